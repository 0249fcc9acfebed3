package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DedS3t/monopoly-banker/app/models"
)

func TestLoadProperties(t *testing.T) {
	properties := LoadProperties()

	require.Len(t, properties, 28)

	standard, railroads, utilities := 0, 0, 0
	seen := make(map[string]bool)
	for _, property := range properties {
		assert.False(t, seen[property.Id], "ids are unique")
		seen[property.Id] = true
		assert.NotEmpty(t, property.PropertyName)
		assert.Greater(t, property.Price, 0)
		assert.Greater(t, property.MortgageValue, 0)
		assert.False(t, property.Mortgaged)

		switch property.Type {
		case models.PropertyTypeStandard:
			standard++
			assert.Greater(t, property.HouseCost, 0)
			assert.Equal(t, 0, property.Houses)
		case models.PropertyTypeRailroad:
			railroads++
			assert.Zero(t, property.HouseCost, "railroads carry no house cost")
		case models.PropertyTypeUtility:
			utilities++
			assert.Zero(t, property.HouseCost)
		default:
			t.Fatalf("unknown property type %q", property.Type)
		}
	}
	assert.Equal(t, 22, standard)
	assert.Equal(t, 4, railroads)
	assert.Equal(t, 2, utilities)
}

func TestGetById(t *testing.T) {
	properties := LoadProperties()

	boardwalk, err := GetById("boardwalk", &properties)
	require.NoError(t, err)
	assert.Equal(t, "Boardwalk", boardwalk.PropertyName)
	assert.Equal(t, 400, boardwalk.Price)

	_, err = GetById("atlantis", &properties)
	assert.Error(t, err)
}

func TestGroupMembers(t *testing.T) {
	properties := LoadProperties()

	brown, err := GetById("mediterranean", &properties)
	require.NoError(t, err)

	members := GroupMembers(brown.Color, &properties)
	require.Len(t, members, 2)
	assert.Equal(t, 2, GroupSize(brown.Color, &properties))

	ids := []string{members[0].Id, members[1].Id}
	assert.Contains(t, ids, "mediterranean")
	assert.Contains(t, ids, "baltic")
}
