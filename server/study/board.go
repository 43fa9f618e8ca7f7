package study

import (
	"strings"

	poker "github.com/paulhankin/poker"
)

// toPH converts a two-character card string ("7c", "As") to a library card.
// Library ranks run 1..13 with Ace=1.
func toPH(s string) (poker.Card, bool) {
	var zero poker.Card
	if len(s) != 2 {
		return zero, false
	}
	var r poker.Rank
	switch s[0] {
	case 'A', 'a':
		r = poker.Rank(1)
	case 'K', 'k':
		r = poker.Rank(13)
	case 'Q', 'q':
		r = poker.Rank(12)
	case 'J', 'j':
		r = poker.Rank(11)
	case 'T', 't':
		r = poker.Rank(10)
	case '2', '3', '4', '5', '6', '7', '8', '9':
		r = poker.Rank(s[0] - '0')
	default:
		return zero, false
	}
	var su poker.Suit
	switch s[1] {
	case 'c', 'C':
		su = poker.Club
	case 'd', 'D':
		su = poker.Diamond
	case 'h', 'H':
		su = poker.Heart
	case 's', 'S':
		su = poker.Spade
	default:
		return zero, false
	}
	card, err := poker.MakeCard(su, r)
	if err != nil {
		return zero, false
	}
	return card, true
}

// BoardTexture describes the community cards as a made hand ("Pair of
// sevens", "Flush" ...), which flags paired and suited boards in review
// notes. Returns "" when there is no usable board.
func BoardTexture(board []string) string {
	if len(board) < 3 {
		return ""
	}
	cards := make([]poker.Card, 0, len(board))
	for _, s := range board {
		c, ok := toPH(strings.TrimSpace(s))
		if !ok {
			return ""
		}
		cards = append(cards, c)
		if len(cards) == 5 {
			break
		}
	}
	// The evaluator describes 3- or 5-card hands; a 4-card turn board is
	// read from its first three cards.
	if len(cards) == 4 {
		cards = cards[:3]
	}
	desc, err := poker.Describe(cards)
	if err != nil {
		return ""
	}
	return desc
}
