package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DedS3t/monopoly-banker/app/models"
)

func TestExecuteTrade(t *testing.T) {
	engine := testEngine()
	mortgagedBaltic := catalogProp(t, "baltic")
	mortgagedBaltic.Mortgaged = true
	game := newTestGame(
		activePlayer("a", "Alice", 1500, catalogProp(t, "mediterranean")),
		activePlayer("b", "Bob", 1500, mortgagedBaltic),
	)
	before := sumBalances(game)

	offer := models.TradeOffer{
		FromPlayerId:        "a",
		ToPlayerId:          "b",
		PropertiesOffered:   []models.Property{catalogProp(t, "mediterranean")},
		MoneyOffered:        100,
		PropertiesRequested: []models.Property{mortgagedBaltic},
		MoneyRequested:      50,
	}
	entry, err := engine.ExecuteTrade(game, offer)

	require.NoError(t, err)
	alice, bob := game.FindPlayer("a"), game.FindPlayer("b")
	assert.Equal(t, 1450, alice.Balance)
	assert.Equal(t, 1550, bob.Balance)
	assert.Equal(t, before, sumBalances(game), "trades conserve money")

	require.Len(t, alice.Properties, 1)
	require.Len(t, bob.Properties, 1)
	assert.Equal(t, "baltic", alice.Properties[0].Id)
	assert.True(t, alice.Properties[0].Mortgaged, "transferred copy keeps its mortgage state")
	assert.Equal(t, "mediterranean", bob.Properties[0].Id)
	assert.False(t, bob.Properties[0].Mortgaged)

	require.NotNil(t, entry.Trade)
	assert.Empty(t, entry.Description, "trade entries carry the structured payload")
	assert.Equal(t, "a", entry.Trade.FromPlayerId)
	assert.Equal(t, "b", entry.Trade.ToPlayerId)
	assert.Equal(t, offer, entry.Trade.Offer)
	require.Len(t, game.History, 1)
}

func TestExecuteTrade_OneSidedIsFine(t *testing.T) {
	// Fairness is never enforced; a pure gift settles like any trade.
	engine := testEngine()
	game := newTestGame(
		activePlayer("a", "Alice", 1500, catalogProp(t, "boardwalk")),
		activePlayer("b", "Bob", 1500),
	)

	_, err := engine.ExecuteTrade(game, models.TradeOffer{
		FromPlayerId:      "a",
		ToPlayerId:        "b",
		PropertiesOffered: []models.Property{catalogProp(t, "boardwalk")},
	})

	require.NoError(t, err)
	assert.Empty(t, game.FindPlayer("a").Properties)
	assert.Equal(t, "boardwalk", game.FindPlayer("b").Properties[0].Id)
}

func TestExecuteTrade_HousesRejectTheOffer(t *testing.T) {
	engine := testEngine()
	built := catalogProp(t, "mediterranean")
	built.Houses = 2
	game := newTestGame(
		activePlayer("a", "Alice", 1500, built),
		activePlayer("b", "Bob", 1500),
	)

	_, err := engine.ExecuteTrade(game, models.TradeOffer{
		FromPlayerId:      "a",
		ToPlayerId:        "b",
		PropertiesOffered: []models.Property{built},
		MoneyRequested:    0,
	})

	require.ErrorIs(t, err, ErrInvalidOffer)
	assert.Len(t, game.FindPlayer("a").Properties, 1)
	assert.Equal(t, 1500, game.FindPlayer("a").Balance)
	assert.Empty(t, game.History)
}

func TestExecuteTrade_Rejections(t *testing.T) {
	engine := testEngine()

	baseGame := func() *models.Game {
		return newTestGame(
			activePlayer("a", "Alice", 100, catalogProp(t, "mediterranean")),
			activePlayer("b", "Bob", 100, catalogProp(t, "baltic")),
		)
	}

	tests := []struct {
		name    string
		offer   models.TradeOffer
		wantErr error
	}{
		{
			"self trade",
			models.TradeOffer{FromPlayerId: "a", ToPlayerId: "a", MoneyOffered: 10},
			ErrPlayerNotEligible,
		},
		{
			"unknown partner",
			models.TradeOffer{FromPlayerId: "a", ToPlayerId: "zz", MoneyOffered: 10},
			ErrPlayerNotFound,
		},
		{
			"negative money",
			models.TradeOffer{FromPlayerId: "a", ToPlayerId: "b", MoneyOffered: -5},
			ErrInvalidAmount,
		},
		{
			"proposer cannot cover the money",
			models.TradeOffer{FromPlayerId: "a", ToPlayerId: "b", MoneyOffered: 500},
			ErrInsufficientFunds,
		},
		{
			"partner cannot cover the money",
			models.TradeOffer{FromPlayerId: "a", ToPlayerId: "b", MoneyRequested: 500},
			ErrInsufficientFunds,
		},
		{
			"offered property not owned by proposer",
			models.TradeOffer{FromPlayerId: "a", ToPlayerId: "b", PropertiesOffered: []models.Property{catalogProp(t, "boardwalk")}},
			ErrInvalidOffer,
		},
		{
			"requested property not owned by partner",
			models.TradeOffer{FromPlayerId: "a", ToPlayerId: "b", PropertiesRequested: []models.Property{catalogProp(t, "boardwalk")}},
			ErrInvalidOffer,
		},
		{
			"property listed twice",
			models.TradeOffer{FromPlayerId: "a", ToPlayerId: "b", PropertiesOffered: []models.Property{catalogProp(t, "mediterranean"), catalogProp(t, "mediterranean")}},
			ErrInvalidOffer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := baseGame()

			_, err := engine.ExecuteTrade(game, tt.offer)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 100, game.FindPlayer("a").Balance)
			assert.Equal(t, 100, game.FindPlayer("b").Balance)
			assert.Len(t, game.FindPlayer("a").Properties, 1)
			assert.Len(t, game.FindPlayer("b").Properties, 1)
			assert.Empty(t, game.History)
		})
	}
}

func TestOfferValue(t *testing.T) {
	properties := []models.Property{catalogProp(t, "mediterranean"), catalogProp(t, "reading-rr")}
	assert.Equal(t, 30+100+75, models.OfferValue(properties, 75))
	assert.Equal(t, 0, models.OfferValue(nil, 0))
}
