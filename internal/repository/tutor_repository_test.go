package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"skillswap/internal/database"

	"github.com/google/uuid"
)

type fakeDB struct {
	lastQuery string
	lastArgs  []any
}

func (f *fakeDB) Ping(context.Context) error { return nil }

func (f *fakeDB) Close() error { return nil }

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	f.lastQuery, f.lastArgs = query, args
	return 0, nil
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	f.lastQuery, f.lastArgs = query, args
	return emptyRows{}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	f.lastQuery, f.lastArgs = query, args
	return noRow{}
}

func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("not supported")
}

func (f *fakeDB) SQLDB() *sql.DB { return nil }

type emptyRows struct{}

func (emptyRows) Close()            {}
func (emptyRows) Next() bool        { return false }
func (emptyRows) Scan(...any) error { return sql.ErrNoRows }
func (emptyRows) Err() error        { return nil }

type noRow struct{}

func (noRow) Scan(...any) error { return sql.ErrNoRows }

func TestTutorsForSkill_PlaceholderNumbering(t *testing.T) {
	db := &fakeDB{}
	repo := NewPostgresTutorRepository(db)
	skillID := uuid.New()

	if _, err := repo.TutorsForSkill(context.Background(), skillID, 20, 40); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(db.lastQuery, "LIMIT $2") || !strings.Contains(db.lastQuery, "OFFSET $3") {
		t.Fatalf("unexpected placeholders in query: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 3 || db.lastArgs[0] != skillID || db.lastArgs[1] != 20 || db.lastArgs[2] != 40 {
		t.Fatalf("unexpected args: %v", db.lastArgs)
	}
}

func TestTutorsForSkill_NoWindowMeansNoPlaceholders(t *testing.T) {
	db := &fakeDB{}
	repo := NewPostgresTutorRepository(db)

	if _, err := repo.TutorsForSkill(context.Background(), uuid.New(), 0, 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if strings.Contains(db.lastQuery, "LIMIT") || strings.Contains(db.lastQuery, "OFFSET") {
		t.Fatalf("expected unwindowed query, got: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 1 {
		t.Fatalf("expected only the skill id arg, got %v", db.lastArgs)
	}
}
