package services

import (
	"context"
	"time"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
	"github.com/AnshRaj112/studentflow-backend/internal/models"
	"github.com/AnshRaj112/studentflow-backend/internal/store"
)

type StudyStore interface {
	LogSession(ctx context.Context, owner, day string, minutes int) (*models.StudySession, error)
	Sessions(ctx context.Context, owner string, limit int) ([]models.StudySession, error)
	TaskCountsByStatus(ctx context.Context, owner string) (map[string]int, error)
	NoteCountsBySubject(ctx context.Context, owner string) (map[string]int, error)
	FlashcardStats(ctx context.Context, owner string) (models.FlashcardStats, error)
	MoodDays(ctx context.Context, owner string) ([]string, error)
}

// StudyService owns session logging, streaks and the analytics rollup.
type StudyService struct {
	store StudyStore
	now   func() time.Time
}

func NewStudyService(s StudyStore) *StudyService {
	return &StudyService{store: s, now: time.Now}
}

// SetClock replaces the clock used to decide "today".
func (s *StudyService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *StudyService) today() string {
	return s.now().UTC().Format(models.DayLayout)
}

// LogSession adds minutes to today's session for owner.
func (s *StudyService) LogSession(ctx context.Context, owner string, minutes int) (*models.StudySession, error) {
	if minutes < 1 {
		return nil, apperr.Invalid("duration must be at least 1 minute")
	}
	return s.store.LogSession(ctx, owner, s.today(), minutes)
}

func (s *StudyService) Streak(ctx context.Context, owner string) (models.Streak, error) {
	sessions, err := s.store.Sessions(ctx, owner, 0)
	if err != nil {
		return models.Streak{}, err
	}
	return ComputeStreak(sessions, s.now()), nil
}

// Analytics is recomputed on every call.
func (s *StudyService) Analytics(ctx context.Context, owner string) (*models.Analytics, error) {
	recent, err := s.store.Sessions(ctx, owner, store.RecentSessionLimit)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.store.TaskCountsByStatus(ctx, owner)
	if err != nil {
		return nil, err
	}
	bySubject, err := s.store.NoteCountsBySubject(ctx, owner)
	if err != nil {
		return nil, err
	}
	stats, err := s.store.FlashcardStats(ctx, owner)
	if err != nil {
		return nil, err
	}

	return &models.Analytics{
		RecentSessions: recent,
		TasksByStatus:  byStatus,
		NotesBySubject: bySubject,
		FlashcardStats: stats,
	}, nil
}

// MoodStreak walks distinct mood-log days the same way study streaks do.
func (s *StudyService) MoodStreak(ctx context.Context, owner string) (int, error) {
	days, err := s.store.MoodDays(ctx, owner)
	if err != nil {
		return 0, err
	}
	return CurrentStreak(daySet(days), s.now()), nil
}
