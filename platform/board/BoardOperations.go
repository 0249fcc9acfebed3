package board

import (
	_ "embed"
	"encoding/json"
	"errors"

	"github.com/DedS3t/monopoly-banker/app/models"
)

//go:embed properties.json
var propertiesJSON []byte

// LoadProperties returns the full board catalog. The catalog is read-only
// configuration; callers get a fresh slice and may hand out copies freely.
func LoadProperties() []models.Property {
	var properties []models.Property
	if err := json.Unmarshal(propertiesJSON, &properties); err != nil {
		panic(err)
	}
	return properties
}

func GetById(id string, properties *[]models.Property) (models.Property, error) { // O(N) time complexity
	for _, property := range *properties {
		if property.Id == id {
			return property, nil
		}
	}
	return models.Property{}, errors.New("not found")
}

// GroupMembers returns every catalog property sharing a color group.
func GroupMembers(color string, properties *[]models.Property) []models.Property {
	var members []models.Property
	for _, property := range *properties {
		if property.Color == color {
			members = append(members, property)
		}
	}
	return members
}

func GroupSize(color string, properties *[]models.Property) int {
	return len(GroupMembers(color, properties))
}
