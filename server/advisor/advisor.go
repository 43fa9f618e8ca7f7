// Package advisor is the preflop recommendation engine: it derives the
// canonical lookup key for a decision point, resolves it against the shared
// range table, and perturbs the raw recommendation with the tournament
// pressure coefficient.
package advisor

import (
	"fmt"
	"strings"

	"github.com/ConceptN8/poker-study-tool/server/classify"
	"github.com/ConceptN8/poker-study-tool/server/concepts"
	"github.com/ConceptN8/poker-study-tool/server/pressure"
	"github.com/ConceptN8/poker-study-tool/server/ranges"
	"github.com/ConceptN8/poker-study-tool/server/study"
)

// Recommendation is what the review layer displays. Unknown/N-A is a valid
// terminal outcome (table miss), never a failure.
type Recommendation struct {
	Action    ranges.Action
	Size      ranges.Size
	Rationale string
	Pressure  float64
}

// Adjustment thresholds and parameters.
const (
	tightenAbove = 1.10 // pressure above this downgrades aggression
	loosenBelow  = 0.95 // pressure below this upgrades shove candidates
	jamStackMax  = 12.0 // loosening only turns fold/call into jam this shallow
	openTrimBB   = 0.3  // tightening shaves this off a numeric open
	openFloorBB  = 2.0  // but never below a min-raise-ish open
	downgradeBB  = 2.2  // size for a jam downgraded to an open
)

// Recommend resolves a decision point against the shared range table. The
// only error is a table load failure (fatal, surfaced on first use);
// everything else degrades to the Unknown/no-op paths.
func Recommend(state study.HandState, meta pressure.Metadata) (Recommendation, error) {
	tbl, err := ranges.Shared()
	if err != nil {
		return Recommendation{}, err
	}
	return RecommendWith(tbl, state, meta), nil
}

// RecommendWith is the pure engine: deterministic, idempotent, and free of
// I/O. Each call starts from the raw table row, so identical inputs always
// produce identical output and pressure never compounds.
func RecommendWith(tbl *ranges.Table, state study.HandState, meta pressure.Metadata) Recommendation {
	key := ranges.Key{
		Position:    strings.ToUpper(strings.TrimSpace(state.Position)),
		StackBucket: classify.StackBucket(state.EffectiveBB),
		VsSituation: classify.FacingSituation(state.Opener),
		HandClass:   classify.HandClass(state.HeroHand),
	}

	p := pressure.Coefficient(meta)

	row, ok := tbl.Lookup(key)
	if !ok {
		return Recommendation{
			Action:    ranges.Unknown,
			Size:      ranges.NoSize(),
			Rationale: concepts.Narrate(state),
			Pressure:  p,
		}
	}

	rec := Recommendation{Action: row.Action, Size: row.Size, Pressure: p}
	notes := []string{fmt.Sprintf(
		"Lookup match: %s hand from %s in the %s bucket (%.1fbb effective), %s -> %s %s.",
		key.HandClass, key.Position, key.StackBucket, state.EffectiveBB,
		key.VsSituation, row.Action, row.Size,
	)}

	switch {
	case p > tightenAbove:
		notes = tighten(&rec, p, notes)
	case p < loosenBelow:
		notes = loosen(&rec, state.EffectiveBB, p, notes)
	}

	rec.Rationale = strings.Join(notes, " ")
	return rec
}

// tighten downgrades aggression when survival pressure is high: jams become
// standard opens, numeric opens shrink (floored at openFloorBB).
func tighten(rec *Recommendation, p float64, notes []string) []string {
	switch {
	case rec.Action == ranges.Jam:
		rec.Action = ranges.Open
		rec.Size = ranges.BBSize(downgradeBB)
		return append(notes, fmt.Sprintf(
			"ICM pressure %.2f: jam downgraded to a %.1fbb open.", p, downgradeBB))
	case rec.Action == ranges.Open && rec.Size.Kind == ranges.SizeBB:
		v := rec.Size.BB - openTrimBB
		if v < openFloorBB {
			v = openFloorBB
		}
		rec.Size = ranges.BBSize(v)
		return append(notes, fmt.Sprintf(
			"ICM pressure %.2f: open trimmed to %.1fbb.", p, v))
	default:
		return notes
	}
}

// loosen upgrades shallow fold/call spots to jams when the format rewards
// chip accumulation (bounties, re-entries, short-handed play).
func loosen(rec *Recommendation, effectiveBB, p float64, notes []string) []string {
	if (rec.Action == ranges.Fold || rec.Action == ranges.Call) && effectiveBB < jamStackMax {
		rec.Action = ranges.Jam
		rec.Size = ranges.JamSize()
		return append(notes, fmt.Sprintf(
			"Accumulation pressure %.2f at %.1fbb: passive line upgraded to a jam.", p, effectiveBB))
	}
	return notes
}
