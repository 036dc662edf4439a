package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameResult_RoundTrip_Slots(t *testing.T) {
	in := GameResult{
		IsWin:      true,
		Multiplier: 3.0,
		Data: SlotsResult{
			Reels: []string{"7", "7", "7"},
			WinLines: []WinLine{
				{LineNumber: 1, Symbols: []string{"7", "7", "7"}, Payout: "30.00"},
			},
		},
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"game_type":"slots"`)

	var out GameResult
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in.IsWin, out.IsWin)

	slots, ok := out.Data.(SlotsResult)
	require.True(t, ok)
	assert.Equal(t, []string{"7", "7", "7"}, slots.Reels)
	assert.Equal(t, GameSlots, out.Data.GameType())
}

func TestGameResult_RoundTrip_Cards(t *testing.T) {
	in := GameResult{
		IsWin:      false,
		Multiplier: 0,
		Data: CardsResult{
			Game:        GameBlackjack,
			PlayerCards: []string{"KH", "9S"},
			DealerCards: []string{"AH", "KD"},
		},
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out GameResult
	require.NoError(t, json.Unmarshal(raw, &out))

	cards, ok := out.Data.(CardsResult)
	require.True(t, ok)
	assert.Equal(t, GameBlackjack, cards.GameType())
	assert.Equal(t, []string{"KH", "9S"}, cards.PlayerCards)
}

func TestGameResult_Unmarshal_CardsInfersGameFromEnvelope(t *testing.T) {
	raw := []byte(`{"is_win":true,"multiplier":2,"game_type":"poker","data":{"player_cards":["AH","AS"],"community_cards":["2C","7D","JH"]}}`)

	var out GameResult
	require.NoError(t, json.Unmarshal(raw, &out))

	cards, ok := out.Data.(CardsResult)
	require.True(t, ok)
	assert.Equal(t, GamePoker, cards.Game)
}

func TestGameResult_RoundTrip_Roulette(t *testing.T) {
	in := GameResult{
		IsWin:      true,
		Multiplier: 35,
		Data:       RouletteResult{WheelNumber: 17, Color: "black", BetType: "straight"},
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out GameResult
	require.NoError(t, json.Unmarshal(raw, &out))

	roulette, ok := out.Data.(RouletteResult)
	require.True(t, ok)
	assert.Equal(t, 17, roulette.WheelNumber)
}

func TestGameResult_Unmarshal_UnknownGameType(t *testing.T) {
	raw := []byte(`{"is_win":true,"multiplier":1,"game_type":"keno","data":{"numbers":[1,2,3]}}`)

	var out GameResult
	err := json.Unmarshal(raw, &out)
	assert.ErrorIs(t, err, ErrInvalidGameType)
}

func TestGameResult_NoPayload(t *testing.T) {
	in := GameResult{IsWin: false, Multiplier: 0, Description: "timeout"}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "game_type")

	var out GameResult
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Nil(t, out.Data)
	assert.Equal(t, "timeout", out.Description)
}
