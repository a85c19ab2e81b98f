package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/ringflip/internal/config"
)

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID         int64
	Difficulty config.DifficultyLevel
	Score      int
	CreatedAt  time.Time
}

// HistoryStats aggregates the run history of one difficulty.
type HistoryStats struct {
	Difficulty config.DifficultyLevel
	GamesCount int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

func difficultyKey(level config.DifficultyLevel) string {
	return level.String()
}

// SaveScore records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveScore(level config.DifficultyLevel, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (difficulty, score) VALUES (?, ?)",
		difficultyKey(level), score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	s.logger.Debug("score saved", "difficulty", level, "score", score, "id", id)
	return id, nil
}

// TopScores retrieves the top N runs for a difficulty, best first.
func (s *Store) TopScores(level config.DifficultyLevel, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, created_at
		 FROM scores
		 WHERE difficulty = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		difficultyKey(level), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		e := ScoreEntry{Difficulty: level}
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score for a difficulty, or 0.
func (s *Store) HighScore(level config.DifficultyLevel) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE difficulty = ?",
		difficultyKey(level),
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes the run history for a difficulty.
func (s *Store) ClearScores(level config.DifficultyLevel) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE difficulty = ?", difficultyKey(level))
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// History aggregates the run history for a difficulty.
func (s *Store) History(level config.DifficultyLevel) (HistoryStats, error) {
	stats := HistoryStats{Difficulty: level}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM scores WHERE difficulty = ?`,
		difficultyKey(level),
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get history stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE difficulty = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		difficultyKey(level),
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return stats, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
