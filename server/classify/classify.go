// Package classify maps raw hand and context fields onto the canonical
// categorical keys the range table is indexed by.
package classify

import "strings"

// Stack depth buckets. Boundary values belong to the higher bucket.
const (
	BucketUnder10 = "<10"
	Bucket10to20  = "10-20"
	Bucket20to40  = "20-40"
	Bucket40Plus  = "40+"
)

// Facing situations the classifier can produce. The range table also
// documents a "vs_minraise" category that nothing here emits; rows using it
// are unreachable until the opener parsing grows more granular.
const (
	Unopened = "unopened"
	VsOpen   = "vs_open"
)

// Hand class categories.
const (
	Premium         = "premium"
	StrongPair      = "strong pair"
	SmallPair       = "small pair"
	StrongBroadway  = "strong broadway"
	SuitedConnector = "suited connector"
	WeakOffsuit     = "weak offsuit"
)

// StackBucket buckets an effective stack (in big blinds) for table lookup.
func StackBucket(bb float64) string {
	switch {
	case bb < 10:
		return BucketUnder10
	case bb < 20:
		return Bucket10to20
	case bb < 40:
		return Bucket20to40
	default:
		return Bucket40Plus
	}
}

// FacingSituation reduces a free-text description of the action in front of
// hero to a table category. Anything that doesn't clearly mention an open or
// a raise is treated as unopened; this is deliberately coarse rather than a
// full action parser.
func FacingSituation(opener string) string {
	s := strings.ToLower(strings.TrimSpace(opener))
	if s == "" {
		return Unopened
	}
	if strings.Contains(s, "open") || strings.Contains(s, "raise") {
		return VsOpen
	}
	return Unopened
}

var (
	premiumPairs   = ranks("AA", "KK", "QQ")
	strongPairs    = ranks("JJ", "TT", "99", "88", "77")
	premiumBig     = ranks("AK", "AQ")
	strongBroadway = ranks("KQ", "QJ", "JT", "JQ", "KJ")
	connectors     = ranks("98", "87", "76", "65", "54")
)

func ranks(rs ...string) map[string]bool {
	m := make(map[string]bool, len(rs))
	for _, r := range rs {
		m[r] = true
	}
	return m
}

// HandClass classifies a two-card descriptor like "QJo" or "AKs" into a
// broad strength category. Classification is total: any input, including an
// empty or unparseable one, lands in exactly one category. Rank order does
// not matter ("KQ" and "QK" are the same hand).
func HandClass(hand string) string {
	h := strings.ToUpper(strings.TrimSpace(hand))
	// Drop the suited/offsuit marker.
	h = strings.TrimRight(h, "OS")

	if len(h) == 2 && h[0] == h[1] {
		switch {
		case premiumPairs[h]:
			return Premium
		case strongPairs[h]:
			return StrongPair
		default:
			return SmallPair
		}
	}
	rev := reverse2(h)
	switch {
	case premiumBig[h] || premiumBig[rev]:
		return Premium
	case strongBroadway[h] || strongBroadway[rev]:
		return StrongBroadway
	case connectors[h] || connectors[rev]:
		return SuitedConnector
	default:
		return WeakOffsuit
	}
}

func reverse2(s string) string {
	if len(s) != 2 {
		return s
	}
	return string([]byte{s[1], s[0]})
}

// Position groups used by the concept narrative.
const (
	GroupEarly  = "early"
	GroupLate   = "late"
	GroupBlinds = "blinds"
	GroupMiddle = "middle"
)

// PositionGroup maps a specific seat name to a coarse position group.
func PositionGroup(pos string) string {
	switch strings.ToUpper(strings.TrimSpace(pos)) {
	case "UTG", "UTG1", "UTG2", "HJ":
		return GroupEarly
	case "CO", "BTN":
		return GroupLate
	case "SB", "BB":
		return GroupBlinds
	default:
		return GroupMiddle
	}
}
