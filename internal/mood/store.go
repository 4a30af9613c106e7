package mood

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type querier interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

// Store persists mood history per session in Postgres.
type Store struct {
	db querier
}

// NewStore wraps a database handle.
func NewStore(db querier) *Store {
	return &Store{db: db}
}

// Record inserts one mood sample and returns the stored entry.
func (s *Store) Record(ctx context.Context, sessionID string, level Level, note string, at time.Time) (Entry, error) {
	entry := Entry{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		Mood:       level,
		Note:       note,
		RecordedAt: at.UTC(),
	}

	var noteRef any
	if note != "" {
		noteRef = note
	}
	_, err := s.db.Exec(
		ctx,
		`INSERT INTO "MoodEntry" (id, "sessionId", mood, note, "recordedAt")
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.ID,
		entry.SessionID,
		string(entry.Mood),
		noteRef,
		entry.RecordedAt,
	)
	if err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// List returns a session's mood history, oldest first.
func (s *Store) List(ctx context.Context, sessionID string) ([]Entry, error) {
	rows, err := s.db.Query(
		ctx,
		`SELECT id, "sessionId", mood, note, "recordedAt"
		 FROM "MoodEntry"
		 WHERE "sessionId" = $1
		 ORDER BY "recordedAt" ASC`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var note *string
		var moodRaw string
		if err := rows.Scan(&entry.ID, &entry.SessionID, &moodRaw, &note, &entry.RecordedAt); err != nil {
			return nil, err
		}
		entry.Mood = Level(moodRaw)
		if note != nil {
			entry.Note = *note
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Clear removes a session's mood history. Idempotent.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM "MoodEntry" WHERE "sessionId" = $1`, sessionID)
	return err
}
