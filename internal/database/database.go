package database

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/AnshRaj112/studentflow-backend/internal/config"
)

// DriverName returns the database/sql driver registered for dsn.
func DriverName(dsn string) string {
	if config.IsPostgresURL(dsn) {
		return "postgres"
	}
	return "sqlite"
}

// sqliteDSN asks the driver to enable foreign keys on every connection it opens.
func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// Connect opens the relational store and verifies the connection.
// A postgres:// URL selects PostgreSQL; anything else is treated as a SQLite file path.
func Connect(ctx context.Context, dsn string) (*sqlx.DB, error) {
	driver := DriverName(dsn)

	if driver == "sqlite" {
		dsn = sqliteDSN(dsn)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", driver)
	}

	if driver == "postgres" {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	} else {
		// SQLite serializes writers; one connection avoids SQLITE_BUSY under load
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "pinging %s", driver)
	}

	log.Printf("✅ Connected to %s", driver)
	return db, nil
}

// InitTables creates all tables and indexes if they don't exist.
// The DDL is restricted to the subset PostgreSQL and SQLite both accept.
func InitTables(ctx context.Context, db *sqlx.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			subject TEXT,
			created_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			title TEXT NOT NULL,
			description TEXT,
			subject TEXT,
			priority TEXT NOT NULL DEFAULT 'medium',
			status TEXT NOT NULL DEFAULT 'pending',
			due_date TEXT,
			estimated_time INTEGER NOT NULL DEFAULT 60,
			created_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS posts (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,

		// At most one like per (post, user)
		`CREATE TABLE IF NOT EXISTS post_likes (
			id TEXT PRIMARY KEY,
			post_id TEXT NOT NULL,
			user_id TEXT NOT NULL REFERENCES users(id),
			created_at TIMESTAMP NOT NULL,
			UNIQUE(post_id, user_id)
		)`,

		// post_id is not a foreign key: comments outlive a deleted post
		`CREATE TABLE IF NOT EXISTS post_comments (
			id TEXT PRIMARY KEY,
			post_id TEXT NOT NULL,
			user_id TEXT NOT NULL REFERENCES users(id),
			content TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS mood_logs (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			mood_score INTEGER NOT NULL,
			energy_level INTEGER,
			stress_level INTEGER,
			notes TEXT,
			date TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS flashcards (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			source_note_id TEXT,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			subject TEXT,
			difficulty TEXT NOT NULL DEFAULT 'medium',
			last_reviewed TIMESTAMP,
			times_reviewed INTEGER NOT NULL DEFAULT 0,
			confidence_level INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL
		)`,

		// One row per (user, calendar day); session_date is YYYY-MM-DD
		`CREATE TABLE IF NOT EXISTS study_sessions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			session_date TEXT NOT NULL,
			duration_minutes INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL,
			UNIQUE(user_id, session_date)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_notes_user_id ON notes(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_created_at ON notes(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_post_likes_post_id ON post_likes(post_id)`,
		`CREATE INDEX IF NOT EXISTS idx_post_comments_post_id ON post_comments(post_id)`,
		`CREATE INDEX IF NOT EXISTS idx_mood_logs_user_id ON mood_logs(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_mood_logs_date ON mood_logs(date)`,
		`CREATE INDEX IF NOT EXISTS idx_flashcards_user_id ON flashcards(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_flashcards_subject ON flashcards(subject)`,
		`CREATE INDEX IF NOT EXISTS idx_study_sessions_user_id ON study_sessions(user_id)`,
	}

	for _, query := range queries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return errors.Wrap(err, "initializing tables")
		}
	}

	log.Println("✅ Database tables initialized")
	return nil
}

// RunInTx runs fn inside a transaction, committing on success and rolling back on error.
func RunInTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("⚠️  Rollback failed: %v", rbErr)
		}
		return err
	}

	return errors.Wrap(tx.Commit(), "committing transaction")
}
