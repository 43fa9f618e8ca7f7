// Package ranges loads and serves the precomputed preflop strategy table.
// The table is the ground truth for recommendations; nothing here judges
// whether its rows are balanced.
package ranges

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Action is a recommended preflop action.
type Action string

const (
	Open    Action = "Open"
	Jam     Action = "Jam"
	Fold    Action = "Fold"
	Call    Action = "Call"
	Raise   Action = "Raise"
	Unknown Action = "Unknown" // resolution miss, not an error
)

// ParseAction validates a table action cell.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open":
		return Open, nil
	case "jam":
		return Jam, nil
	case "fold":
		return Fold, nil
	case "call":
		return Call, nil
	case "raise":
		return Raise, nil
	default:
		return "", fmt.Errorf("unknown action %q", s)
	}
}

// SizeKind tags a Size value.
type SizeKind int

const (
	SizeNone SizeKind = iota // no sizing applies ("N/A")
	SizeJam                  // all-in
	SizeBB                   // numeric open size in big blinds
)

// Size is a tagged bet sizing: symbolic (jam / none) or a numeric amount in
// big blinds. String conversion happens only at the output boundary.
type Size struct {
	Kind SizeKind
	BB   float64
}

func JamSize() Size         { return Size{Kind: SizeJam} }
func NoSize() Size          { return Size{Kind: SizeNone} }
func BBSize(v float64) Size { return Size{Kind: SizeBB, BB: v} }

// ParseSize parses a table size cell: "Jam", "N/A", or "<v>bb".
func ParseSize(s string) (Size, error) {
	t := strings.TrimSpace(s)
	switch strings.ToLower(t) {
	case "jam":
		return JamSize(), nil
	case "", "n/a", "na", "-":
		return NoSize(), nil
	}
	num := strings.TrimSuffix(strings.ToLower(t), "bb")
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || v <= 0 {
		return Size{}, fmt.Errorf("unparseable size %q", s)
	}
	return BBSize(v), nil
}

func (s Size) String() string {
	switch s.Kind {
	case SizeJam:
		return "Jam"
	case SizeBB:
		return fmt.Sprintf("%.1fbb", s.BB)
	default:
		return "N/A"
	}
}

// Key identifies a table row: where hero sits, how deep, what action hero is
// facing, and what class of hand hero holds.
type Key struct {
	Position    string
	StackBucket string
	VsSituation string
	HandClass   string
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", k.Position, k.StackBucket, k.VsSituation, k.HandClass)
}

// Row is one table entry.
type Row struct {
	Key    Key
	Action Action
	Size   Size
}

// Table is an immutable, exact-match index of strategy rows.
type Table struct {
	rows   map[Key]Row
	source string
}

// LoadError means the table source is missing, unreadable, or structurally
// invalid. It is the only fatal failure in the engine.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("ranges: load %s: %v", e.Source, e.Err)
}
func (e *LoadError) Unwrap() error { return e.Err }

var columns = []string{"position", "stack_bb_bucket", "vs_situation", "hand_class", "action", "size"}

// Parse reads CSV rows into a Table. Duplicate keys are rejected rather
// than silently picking one, so recommendations stay deterministic.
func Parse(r io.Reader, source string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("read header: %w", err)}
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range columns {
		if _, ok := idx[c]; !ok {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("missing column %q", c)}
		}
	}

	rows := make(map[Key]Row)
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("line %d: %w", line, err)}
		}
		cell := func(name string) string { return strings.TrimSpace(rec[idx[name]]) }

		key := Key{
			Position:    cell("position"),
			StackBucket: cell("stack_bb_bucket"),
			VsSituation: cell("vs_situation"),
			HandClass:   cell("hand_class"),
		}
		action, err := ParseAction(cell("action"))
		if err != nil {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("line %d: %w", line, err)}
		}
		size, err := ParseSize(cell("size"))
		if err != nil {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("line %d: %w", line, err)}
		}
		if _, dup := rows[key]; dup {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("line %d: duplicate key %s", line, key)}
		}
		rows[key] = Row{Key: key, Action: action, Size: size}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("no rows")}
	}
	return &Table{rows: rows, source: source}, nil
}

// Lookup is exact-match only. A miss is a first-class outcome that drives
// the narrative fallback, never an error.
func (t *Table) Lookup(k Key) (Row, bool) {
	row, ok := t.rows[k]
	return row, ok
}

func (t *Table) Len() int       { return len(t.rows) }
func (t *Table) Source() string { return t.source }
