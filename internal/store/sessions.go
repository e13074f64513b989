package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/AnshRaj112/studentflow-backend/internal/models"
)

const RecentSessionLimit = 30

// LogSession adds minutes to the owner's row for day, creating it if absent.
// The accumulate is a single upsert so concurrent logs for one day never lose minutes.
func (s *Store) LogSession(ctx context.Context, owner, day string, minutes int) (*models.StudySession, error) {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO study_sessions (id, user_id, session_date, duration_minutes, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, session_date)
		DO UPDATE SET duration_minutes = study_sessions.duration_minutes + excluded.duration_minutes`),
		newID(), owner, day, minutes, s.stamp())
	if err != nil {
		return nil, errors.Wrap(err, "logging study session")
	}

	var session models.StudySession
	err = s.db.GetContext(ctx, &session, s.rebind(`
		SELECT * FROM study_sessions WHERE user_id = ? AND session_date = ?`), owner, day)
	if err != nil {
		return nil, errors.Wrap(err, "loading study session")
	}
	return &session, nil
}

// Sessions returns the owner's sessions newest-first; limit <= 0 returns all of them.
func (s *Store) Sessions(ctx context.Context, owner string, limit int) ([]models.StudySession, error) {
	query := `SELECT * FROM study_sessions WHERE user_id = ? ORDER BY session_date DESC`
	args := []interface{}{owner}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	sessions := []models.StudySession{}
	if err := s.db.SelectContext(ctx, &sessions, s.rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "listing study sessions")
	}
	return sessions, nil
}
