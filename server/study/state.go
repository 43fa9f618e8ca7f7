// Package study defines the hand-state record the engine consumes and the
// normalization from the loose string maps the OCR/UI layer produces.
package study

import (
	"encoding/json"
	"strconv"
	"strings"
)

// HandState is one decision point under review. It is built once by the
// input layer and read-only afterwards.
type HandState struct {
	HeroHand      string   `json:"hero_hand"`          // e.g. "QJo", "AKs"; may be empty when OCR failed
	Position      string   `json:"position"`           // UTG, HJ, CO, BTN, SB, BB
	EffectiveBB   float64  `json:"effective_bb"`       // effective stack in big blinds
	Opener        string   `json:"opener"`             // action facing hero; empty = first to act
	Board         []string `json:"board,omitempty"`    // community cards, e.g. ["7c","8d","2s"]
	Pot           *float64 `json:"pot,omitempty"`      // pot size in chips
	PlayersLeft   *int     `json:"players_left,omitempty"`
	BuyIn         *float64 `json:"buy_in,omitempty"`
	ActionHistory string   `json:"action_history,omitempty"`
}

func (s HandState) JSON() string {
	b, _ := json.Marshal(s)
	return string(b)
}

// ParseHandState normalizes an OCR/UI output map (all values strings) into a
// HandState. Numeric fields that fail to parse are dropped rather than
// erroring; the engine's fallback paths handle sparse states.
func ParseHandState(raw map[string]string) HandState {
	s := HandState{
		HeroHand:      strings.TrimSpace(raw["hero_hand"]),
		Position:      strings.TrimSpace(raw["position"]),
		Opener:        strings.TrimSpace(raw["opener"]),
		ActionHistory: strings.TrimSpace(raw["action_history"]),
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw["effective_bb"]), 64); err == nil && v >= 0 {
		s.EffectiveBB = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw["pot"]), 64); err == nil && v > 0 {
		s.Pot = &v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(raw["players_left"])); err == nil && v > 0 {
		s.PlayersLeft = &v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw["buy_in"]), 64); err == nil && v > 0 {
		s.BuyIn = &v
	}
	for _, c := range strings.Fields(raw["board"]) {
		s.Board = append(s.Board, c)
	}
	return s
}
