// Package store persists reviewed hands so sessions survive restarts and
// feed the quiz and review-log endpoints.
package store

import (
	"context"
	"embed"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema embed.FS

type DB struct{ *pgxpool.Pool }

func Open(dsn string) (*DB, error) {
	p, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &DB{p}, nil
}

func (db *DB) Close(ctx context.Context)      { db.Pool.Close() }
func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

func Migrate(ctx context.Context, db *DB) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sqlBytes))
	return err
}

// ErrNotFound reports a hand id that is not in the store.
var ErrNotFound = errors.New("store: hand not found")

// Hand is a stored review entry: the decision point, what the engine said,
// and what the player actually did (nil until recorded).
type Hand struct {
	ID           int64    `json:"id"`
	CreatedAt    string   `json:"created_at"`
	HeroHand     string   `json:"hero_hand"`
	Position     string   `json:"position"`
	EffectiveBB  float64  `json:"effective_bb"`
	Opener       string   `json:"opener"`
	Board        []string `json:"board"`
	Pot          *float64 `json:"pot"`
	PlayersLeft  *int     `json:"players_left"`
	BuyIn        *float64 `json:"buy_in"`
	Metadata     []byte   `json:"-"`
	Pressure     float64  `json:"pressure"`
	RecAction    string   `json:"rec_action"`
	RecSize      string   `json:"rec_size"`
	Rationale    string   `json:"rationale"`
	PlayerAction *string  `json:"player_action"`
}

const handColumns = `
    id, to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SSOF') AS created_at,
    hero_hand, position, effective_bb, opener, board,
    pot, players_left, buy_in, metadata, pressure,
    rec_action, rec_size, rationale, player_action`

func scanHand(row pgx.Row) (Hand, error) {
	var h Hand
	err := row.Scan(&h.ID, &h.CreatedAt,
		&h.HeroHand, &h.Position, &h.EffectiveBB, &h.Opener, &h.Board,
		&h.Pot, &h.PlayersLeft, &h.BuyIn, &h.Metadata, &h.Pressure,
		&h.RecAction, &h.RecSize, &h.Rationale, &h.PlayerAction)
	return h, err
}

// InsertHand stores a reviewed hand and returns its id. metadataJSON may be
// nil when no tournament metadata was supplied.
func (db *DB) InsertHand(ctx context.Context, h Hand, metadataJSON []byte) (int64, error) {
	var meta any
	if len(metadataJSON) > 0 {
		meta = metadataJSON
	}
	board := h.Board
	if board == nil {
		board = []string{}
	}
	var id int64
	err := db.QueryRow(ctx, `
        INSERT INTO hands(
            hero_hand, position, effective_bb, opener, board,
            pot, players_left, buy_in, metadata, pressure,
            rec_action, rec_size, rationale
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id
    `, h.HeroHand, h.Position, h.EffectiveBB, h.Opener, board,
		h.Pot, h.PlayersLeft, h.BuyIn, meta, h.Pressure,
		h.RecAction, h.RecSize, h.Rationale).Scan(&id)
	return id, err
}

// RecordAction stores the player's actual action for a reviewed hand.
func (db *DB) RecordAction(ctx context.Context, id int64, action string) error {
	tag, err := db.Exec(ctx, `UPDATE hands SET player_action = $2 WHERE id = $1`, id, action)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetHand fetches one stored hand.
func (db *DB) GetHand(ctx context.Context, id int64) (Hand, error) {
	h, err := scanHand(db.QueryRow(ctx, `SELECT`+handColumns+` FROM hands WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Hand{}, ErrNotFound
	}
	return h, err
}

// ListHands returns stored hands, newest first. limit <= 0 means all.
func (db *DB) ListHands(ctx context.Context, limit int) ([]Hand, error) {
	q := `SELECT` + handColumns + ` FROM hands ORDER BY id DESC`
	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = db.Query(ctx, q+` LIMIT $1`, limit)
	} else {
		rows, err = db.Query(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Hand{}
	for rows.Next() {
		h, err := scanHand(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// RandomHand picks one stored hand for quiz mode. Prefers hands with a
// recorded action so the reveal step has something to show.
func (db *DB) RandomHand(ctx context.Context) (Hand, error) {
	h, err := scanHand(db.QueryRow(ctx, `
        SELECT`+handColumns+`
          FROM hands
         ORDER BY (player_action IS NULL), random()
         LIMIT 1`))
	if errors.Is(err, pgx.ErrNoRows) {
		return Hand{}, ErrNotFound
	}
	return h, err
}

// CountHands returns the number of stored hands.
func (db *DB) CountHands(ctx context.Context) (int, error) {
	var n int
	err := db.QueryRow(ctx, `SELECT COUNT(*) FROM hands`).Scan(&n)
	return n, err
}
