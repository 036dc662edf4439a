package model

import (
	"encoding/json"
	"fmt"
)

// GameResult is the outcome payload recorded at session completion. The
// per-game payload is a tagged union keyed by game type rather than one
// struct with all-optional fields.
type GameResult struct {
	IsWin       bool       `json:"is_win"`
	Multiplier  float64    `json:"multiplier"`
	Description string     `json:"description,omitempty"`
	Data        ResultData `json:"-"`
}

// ResultData is implemented by exactly one payload variant per game family.
type ResultData interface {
	GameType() GameType
}

type SlotsResult struct {
	Reels    []string  `json:"reels"`
	Paylines []int     `json:"paylines,omitempty"`
	WinLines []WinLine `json:"win_lines,omitempty"`
}

type WinLine struct {
	LineNumber int      `json:"line_number"`
	Symbols    []string `json:"symbols"`
	Payout     string   `json:"payout"`
}

func (SlotsResult) GameType() GameType { return GameSlots }

// CardsResult covers blackjack, poker and baccarat hands.
type CardsResult struct {
	Game           GameType `json:"game"`
	PlayerCards    []string `json:"player_cards"`
	DealerCards    []string `json:"dealer_cards,omitempty"`
	CommunityCards []string `json:"community_cards,omitempty"`
}

func (c CardsResult) GameType() GameType { return c.Game }

type RouletteResult struct {
	WheelNumber int    `json:"wheel_number"`
	Color       string `json:"color"`
	BetType     string `json:"bet_type"`
}

func (RouletteResult) GameType() GameType { return GameRoulette }

type DiceResult struct {
	DiceValues []int `json:"dice_values"`
	TotalValue int   `json:"total_value"`
}

func (DiceResult) GameType() GameType { return GameDice }

type LotteryResult struct {
	SelectedNumbers []int `json:"selected_numbers"`
	WinningNumbers  []int `json:"winning_numbers"`
}

func (LotteryResult) GameType() GameType { return GameLottery }

type resultEnvelope struct {
	IsWin       bool            `json:"is_win"`
	Multiplier  float64         `json:"multiplier"`
	Description string          `json:"description,omitempty"`
	GameType    GameType        `json:"game_type,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
}

func (r GameResult) MarshalJSON() ([]byte, error) {
	env := resultEnvelope{
		IsWin:       r.IsWin,
		Multiplier:  r.Multiplier,
		Description: r.Description,
	}
	if r.Data != nil {
		raw, err := json.Marshal(r.Data)
		if err != nil {
			return nil, err
		}
		env.GameType = r.Data.GameType()
		env.Data = raw
	}
	return json.Marshal(env)
}

func (r *GameResult) UnmarshalJSON(b []byte) error {
	var env resultEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	r.IsWin = env.IsWin
	r.Multiplier = env.Multiplier
	r.Description = env.Description
	r.Data = nil
	if len(env.Data) == 0 {
		return nil
	}

	var data ResultData
	switch env.GameType {
	case GameSlots:
		v := SlotsResult{}
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return err
		}
		data = v
	case GameBlackjack, GamePoker, GameBaccarat:
		v := CardsResult{}
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return err
		}
		if v.Game == "" {
			v.Game = env.GameType
		}
		data = v
	case GameRoulette:
		v := RouletteResult{}
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return err
		}
		data = v
	case GameDice:
		v := DiceResult{}
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return err
		}
		data = v
	case GameLottery:
		v := LotteryResult{}
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return err
		}
		data = v
	default:
		return fmt.Errorf("%w: %q", ErrInvalidGameType, env.GameType)
	}
	r.Data = data
	return nil
}
