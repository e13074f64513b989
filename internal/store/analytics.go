package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/AnshRaj112/studentflow-backend/internal/models"
)

const UncategorizedSubject = "Uncategorized"

type groupCount struct {
	Key   string `db:"key"`
	Count int    `db:"n"`
}

func (s *Store) TaskCountsByStatus(ctx context.Context, owner string) (map[string]int, error) {
	var rows []groupCount
	err := s.db.SelectContext(ctx, &rows, s.rebind(`
		SELECT status AS key, COUNT(*) AS n FROM tasks WHERE user_id = ? GROUP BY status`), owner)
	if err != nil {
		return nil, errors.Wrap(err, "counting tasks by status")
	}
	return toCounts(rows), nil
}

// NoteCountsBySubject groups notes with no subject under UncategorizedSubject.
func (s *Store) NoteCountsBySubject(ctx context.Context, owner string) (map[string]int, error) {
	var rows []groupCount
	err := s.db.SelectContext(ctx, &rows, s.rebind(`
		SELECT COALESCE(subject, '') AS key, COUNT(*) AS n
		FROM notes WHERE user_id = ? GROUP BY subject`), owner)
	if err != nil {
		return nil, errors.Wrap(err, "counting notes by subject")
	}
	for i := range rows {
		if rows[i].Key == "" {
			rows[i].Key = UncategorizedSubject
		}
	}
	return toCounts(rows), nil
}

func (s *Store) FlashcardStats(ctx context.Context, owner string) (models.FlashcardStats, error) {
	var stats models.FlashcardStats
	err := s.db.GetContext(ctx, &stats, s.rebind(`
		SELECT COUNT(*) AS total,
		       COALESCE(AVG(confidence_level), 0) AS avg_confidence,
		       COALESCE(SUM(times_reviewed), 0) AS total_reviews
		FROM flashcards WHERE user_id = ?`), owner)
	if err != nil {
		return models.FlashcardStats{}, errors.Wrap(err, "computing flashcard stats")
	}
	return stats, nil
}

func toCounts(rows []groupCount) map[string]int {
	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Key] += r.Count
	}
	return counts
}
