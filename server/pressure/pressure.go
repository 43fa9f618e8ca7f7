// Package pressure turns tournament metadata into a single risk multiplier.
//
// The coefficient is 1.0 when nothing is known. Values above 1 mean survival
// pressure (tighten up, protect the stack); values below 1 mean the format
// rewards accumulation (loosen up). Every signal contributes an independent
// multiplicative factor, so the combination is order-insensitive, and a
// missing or malformed signal simply contributes nothing.
package pressure

import (
	"strconv"
	"strings"
)

// Reentry is the normalized re-entry policy of the tournament.
type Reentry int

const (
	ReentryUnknown Reentry = iota
	ReentryNone
	ReentrySingle
	ReentryMulti
	ReentryUnlimited
)

func (r Reentry) String() string {
	switch r {
	case ReentryNone:
		return "none"
	case ReentrySingle:
		return "single"
	case ReentryMulti:
		return "multi"
	case ReentryUnlimited:
		return "unlimited"
	default:
		return "unknown"
	}
}

// ParseReentry normalizes free-text re-entry descriptions from the lobby.
func ParseReentry(s string) Reentry {
	t := strings.ToLower(strings.TrimSpace(s))
	switch {
	case t == "":
		return ReentryUnknown
	case strings.Contains(t, "unlimited") || strings.Contains(t, "unlim"):
		return ReentryUnlimited
	case strings.Contains(t, "multi") || strings.Contains(t, "re-entries") || strings.Contains(t, "reentries"):
		return ReentryMulti
	case strings.Contains(t, "single") || strings.Contains(t, "1 re-entry") || strings.Contains(t, "one re-entry"):
		return ReentrySingle
	case strings.Contains(t, "none") || strings.Contains(t, "freezeout") || strings.Contains(t, "no re-entry"):
		return ReentryNone
	default:
		return ReentryUnknown
	}
}

// Metadata is the typed form of the tournament signals the OCR/lobby layer
// produces. Nil pointer fields mean "not observed"; every absent or
// malformed signal is neutral.
type Metadata struct {
	PlayersLeft     *int    // remaining player count
	FieldSize       *int    // total entrants, when "X/Y" was observed
	PlacesPaid      *int    // paid finishing positions
	Reentry         Reentry // normalized re-entry policy
	Bounty          bool    // PKO / bounty format
	BubbleProtected bool    // operator refunds bubble finishers
	TableSize       string  // raw seating descriptor, e.g. "6-max", "9"
}

// ParseMetadata converts the loose string map supplied by the OCR/UI layer
// into typed Metadata. It never fails: each field that cannot be parsed is
// left at its neutral zero value.
func ParseMetadata(raw map[string]string) Metadata {
	var m Metadata
	if raw == nil {
		return m
	}
	if v, ok := first(raw, "players_left", "players_remaining", "players"); ok {
		m.PlayersLeft, m.FieldSize = parsePlayers(v)
	}
	if v, ok := first(raw, "places_paid", "paid_places", "itm"); ok {
		m.PlacesPaid = parseInt(v)
	}
	if v, ok := first(raw, "reentry", "re_entry", "re-entry", "reentry_policy"); ok {
		m.Reentry = ParseReentry(v)
	}
	if v, ok := first(raw, "bounty", "pko"); ok {
		m.Bounty = asBool(v)
	}
	if v, ok := first(raw, "bubble_protection", "bubble_protected"); ok {
		m.BubbleProtected = asBool(v)
	}
	if v, ok := first(raw, "table_size", "seats", "max_players"); ok {
		m.TableSize = strings.TrimSpace(v)
	}
	return m
}

func first(raw map[string]string, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}

// parsePlayers accepts a bare count or a "remaining/total" string. The
// numerator drives the bubble-distance signal; the denominator is kept for
// display only. Garbage yields nils.
func parsePlayers(s string) (left, total *int) {
	t := strings.TrimSpace(s)
	if i := strings.IndexByte(t, '/'); i >= 0 {
		left = parseInt(t[:i])
		total = parseInt(t[i+1:])
		return
	}
	return parseInt(t), nil
}

func parseInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// Multiplier table. Each factor is documented next to its condition; see
// Coefficient for how they compose.
const (
	nearBubbleFactor  = 1.20 // within 6 eliminations of the money
	approachingFactor = 1.10 // within 18 eliminations of the money
	reentryFactor     = 0.90 // multi/unlimited re-entry: chips are replaceable
	protectionFactor  = 0.95 // bubble protection removes the worst outcome
	bountyFactor      = 0.95 // PKO: knockouts pay immediately
	sixMaxFactor      = 0.95 // short-handed tables force wider ranges
	sevenMaxFactor    = 0.98
)

// Coefficient computes the combined pressure multiplier. Pure, total, and
// commutative in its factors; Coefficient(Metadata{}) == 1.0.
func Coefficient(m Metadata) float64 {
	p := 1.0
	p *= bubbleFactor(m)
	switch m.Reentry {
	case ReentryMulti, ReentryUnlimited:
		p *= reentryFactor
	}
	if m.BubbleProtected {
		p *= protectionFactor
	}
	if m.Bounty {
		p *= bountyFactor
	}
	switch {
	case strings.HasPrefix(m.TableSize, "6"):
		p *= sixMaxFactor
	case strings.HasPrefix(m.TableSize, "7"):
		p *= sevenMaxFactor
	}
	return p
}

// bubbleFactor scores distance to the money. A negative distance means hero
// is already in the money (or the inputs disagree); either way there is no
// survival premium to price in.
func bubbleFactor(m Metadata) float64 {
	if m.PlayersLeft == nil || m.PlacesPaid == nil {
		return 1.0
	}
	dist := *m.PlayersLeft - *m.PlacesPaid
	switch {
	case dist < 0:
		return 1.0
	case dist <= 6:
		return nearBubbleFactor
	case dist <= 18:
		return approachingFactor
	default:
		return 1.0
	}
}
