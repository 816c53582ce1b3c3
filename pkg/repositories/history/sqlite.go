package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/marczelloo/kasyno/pkg/entities"
)

const createRoundsTableSQL = `
	CREATE TABLE IF NOT EXISTS rounds (
		id TEXT PRIMARY KEY,
		player_name TEXT NOT NULL,
		game TEXT NOT NULL,
		bet INTEGER NOT NULL,
		payout INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		played_at TIMESTAMP NOT NULL
	)`

const createRoundsIndexesSQL = `
	CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player_name);
	CREATE INDEX IF NOT EXISTS idx_rounds_player_game ON rounds(player_name, game);
	CREATE INDEX IF NOT EXISTS idx_rounds_played_at ON rounds(played_at DESC)
	`

// SQLiteRepository implements Repository using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (creating if needed) a round history database
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if _, err := db.Exec(createRoundsTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating rounds table: %w", err)
	}

	if _, err := db.Exec(createRoundsIndexesSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating rounds indexes: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveRound records a settled round, assigning an ID and timestamp when missing
func (r *SQLiteRepository) SaveRound(ctx context.Context, record *entities.RoundRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.PlayedAt.IsZero() {
		record.PlayedAt = time.Now()
	}

	query := `INSERT INTO rounds (id, player_name, game, bet, payout, outcome, played_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.PlayerName, string(record.Game),
		record.Bet, record.Payout, string(record.Outcome), record.PlayedAt)
	if err != nil {
		return fmt.Errorf("error saving round: %w", err)
	}
	return nil
}

// GetPlayerRounds retrieves a player's rounds, newest first
func (r *SQLiteRepository) GetPlayerRounds(ctx context.Context, playerName string, limit int) ([]*entities.RoundRecord, error) {
	query := `SELECT id, player_name, game, bet, payout, outcome, played_at
		FROM rounds WHERE player_name = ? ORDER BY played_at DESC`
	args := []interface{}{playerName}

	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

// GetPlayerGameRounds retrieves a player's rounds for one game, newest first
func (r *SQLiteRepository) GetPlayerGameRounds(ctx context.Context, playerName string, game entities.GameType) ([]*entities.RoundRecord, error) {
	query := `SELECT id, player_name, game, bet, payout, outcome, played_at
		FROM rounds WHERE player_name = ? AND game = ? ORDER BY played_at DESC`

	rows, err := r.db.QueryContext(ctx, query, playerName, string(game))
	if err != nil {
		return nil, fmt.Errorf("error querying rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

// Close closes the underlying database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanRounds(rows *sql.Rows) ([]*entities.RoundRecord, error) {
	var records []*entities.RoundRecord

	for rows.Next() {
		var record entities.RoundRecord
		var game, outcome string

		if err := rows.Scan(&record.ID, &record.PlayerName, &game,
			&record.Bet, &record.Payout, &outcome, &record.PlayedAt); err != nil {
			return nil, fmt.Errorf("error scanning round: %w", err)
		}

		record.Game = entities.GameType(game)
		record.Outcome = entities.RoundOutcome(outcome)
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rounds: %w", err)
	}

	return records, nil
}
