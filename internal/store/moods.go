package store

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/AnshRaj112/studentflow-backend/internal/models"
)

type MoodInput struct {
	MoodScore   int
	EnergyLevel *int
	StressLevel *int
	Notes       *string
}

func (s *Store) CreateMood(ctx context.Context, owner string, in MoodInput) (*models.MoodLog, error) {
	mood := &models.MoodLog{
		ID:          newID(),
		UserID:      owner,
		MoodScore:   in.MoodScore,
		EnergyLevel: in.EnergyLevel,
		StressLevel: in.StressLevel,
		Notes:       in.Notes,
		Date:        s.stamp(),
	}

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO mood_logs (id, user_id, mood_score, energy_level, stress_level, notes, date)
		VALUES (:id, :user_id, :mood_score, :energy_level, :stress_level, :notes, :date)`, mood)
	if err != nil {
		return nil, errors.Wrap(err, "inserting mood log")
	}
	return mood, nil
}

func (s *Store) ListMoods(ctx context.Context, owner string, limit int) ([]models.MoodLog, error) {
	moods := []models.MoodLog{}
	err := s.db.SelectContext(ctx, &moods, s.rebind(`
		SELECT * FROM mood_logs WHERE user_id = ?
		ORDER BY date DESC LIMIT ?`), owner, limit)
	if err != nil {
		return nil, errors.Wrap(err, "listing mood logs")
	}
	return moods, nil
}

func (s *Store) DeleteMood(ctx context.Context, owner, id string) error {
	if err := s.checkOwner(ctx, s.db, moodEntity, id, owner); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM mood_logs WHERE id = ? AND user_id = ?`), id, owner)
	return errors.Wrap(err, "deleting mood log")
}

// MoodDays returns the distinct UTC calendar days on which the owner logged a mood.
func (s *Store) MoodDays(ctx context.Context, owner string) ([]string, error) {
	var stamps []time.Time
	err := s.db.SelectContext(ctx, &stamps, s.rebind(`SELECT date FROM mood_logs WHERE user_id = ?`), owner)
	if err != nil {
		return nil, errors.Wrap(err, "loading mood days")
	}

	seen := make(map[string]bool, len(stamps))
	days := make([]string, 0, len(stamps))
	for _, ts := range stamps {
		day := ts.UTC().Format(models.DayLayout)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	return days, nil
}
