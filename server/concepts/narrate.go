// Package concepts produces the general-strategy narrative used when no
// range-table row matches a reviewed spot. The notes are deliberately
// high-level: typical solver tendencies by stack depth, position group, and
// hand class, not computed solutions.
package concepts

import (
	"fmt"
	"strings"

	"github.com/ConceptN8/poker-study-tool/server/classify"
	"github.com/ConceptN8/poker-study-tool/server/study"
)

// Narrative stack buckets are coarser than the table buckets: the concept
// notes only distinguish short / medium / deep play.
func narrativeBucket(bb float64) string {
	switch {
	case bb <= 10:
		return "short"
	case bb <= 25:
		return "medium"
	default:
		return "deep"
	}
}

var stackNotes = map[string]string{
	"short":  "At short stacks (<=10bb), jam or fold decisions dominate; flatting is rare.",
	"medium": "At medium stacks (10-25bb), jam/fold plays are common, but small raises and occasional flats appear.",
	"deep":   "At deep stacks (25bb+), a wider range of actions (open, 3-bet, flat) becomes viable.",
}

var positionNotes = map[string]string{
	classify.GroupEarly:  "From early position, ranges stay tight and lean on premiums and strong broadways.",
	classify.GroupLate:   "In late position, ranges widen considerably, adding suited connectors and weaker broadways.",
	classify.GroupBlinds: "In the blinds, one defends a wide range against opens but stays cautious out of position.",
	classify.GroupMiddle: "From middle position, one plays a moderately tight range with selected speculative hands.",
}

var handNotes = map[string]string{
	classify.Premium:         "Premium hands almost always justify aggressive actions: raising or jamming.",
	classify.StrongPair:      "Strong pairs are typically good for raising or jamming, especially against earlier-position opens.",
	classify.SmallPair:       "Small pairs become jam candidates at short stacks, or set-mining hands at deeper stacks.",
	classify.StrongBroadway:  "Strong broadway hands sit near the top of the opening range; solvers mix calls, raises and folds under ICM pressure.",
	classify.SuitedConnector: "Suited connectors gain value in multi-way pots and play best from late position with deeper stacks.",
	classify.WeakOffsuit:     "Weak offsuit hands are typically folded except when defending the big blind or attacking short stacks.",
}

// Narrate builds the human-readable concept note for a decision point. It
// always returns non-empty text.
func Narrate(state study.HandState) string {
	parts := []string{
		stackNotes[narrativeBucket(state.EffectiveBB)],
		positionNotes[classify.PositionGroup(state.Position)],
		handNotes[classify.HandClass(state.HeroHand)],
	}
	if tex := study.BoardTexture(state.Board); tex != "" {
		parts = append(parts, fmt.Sprintf("Board %s reads as %s.", strings.Join(state.Board, " "), tex))
	}
	return strings.Join(parts, " ")
}
