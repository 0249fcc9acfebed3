package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DedS3t/monopoly-banker/app/models"
	"github.com/DedS3t/monopoly-banker/platform/board"
)

func TestOpponents(t *testing.T) {
	p := NewStaticPool(board.LoadProperties())

	opponents := p.Opponents(3, []string{"top-hat"})

	require.Len(t, opponents, 3)
	icons := map[string]bool{"top-hat": true}
	for _, opponent := range opponents {
		assert.False(t, icons[opponent.PlayerIcon], "icons are unique across the table")
		icons[opponent.PlayerIcon] = true
		assert.NotEmpty(t, opponent.Id)
		assert.Equal(t, models.PlayerStatusActive, opponent.Status)
		assert.False(t, opponent.IsHost)
	}
}

func TestOpponents_HoldingsResolveAgainstCatalog(t *testing.T) {
	p := NewStaticPool(board.LoadProperties())

	// The full roster: every holding must resolve to a real board property.
	opponents := p.Opponents(len(p.roster), nil)

	require.NotEmpty(t, opponents)
	for _, opponent := range opponents {
		for _, property := range opponent.Properties {
			assert.NotEmpty(t, property.PropertyName)
			assert.True(t, property.Mortgaged, "roster holdings come in mortgaged")
			assert.Equal(t, 0, property.Houses)
		}
	}
}

func TestOpponents_RosterRunsShort(t *testing.T) {
	p := NewStaticPool(board.LoadProperties())

	opponents := p.Opponents(10, nil)

	assert.Len(t, opponents, len(p.roster), "never more than the roster holds")
}
