package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AnshRaj112/studentflow-backend/internal/models"
)

func sessionsOn(days ...string) []models.StudySession {
	out := make([]models.StudySession, 0, len(days))
	for _, d := range days {
		out = append(out, models.StudySession{Date: d, DurationMinutes: 10})
	}
	return out
}

func at(day string) time.Time {
	t, err := time.Parse(models.DayLayout, day)
	if err != nil {
		panic(err)
	}
	return t.Add(15 * time.Hour)
}

func TestComputeStreak(t *testing.T) {
	testCases := []struct {
		name     string
		sessions []models.StudySession
		today    string
		current  int
		longest  int
	}{
		{name: "no sessions", sessions: nil, today: "2024-03-10", current: 0, longest: 0},
		{name: "three consecutive ending today", sessions: sessionsOn("2024-03-08", "2024-03-09", "2024-03-10"), today: "2024-03-10", current: 3, longest: 3},
		{name: "today missing keeps streak", sessions: sessionsOn("2024-03-08", "2024-03-09"), today: "2024-03-10", current: 2, longest: 2},
		{name: "two day gap breaks streak", sessions: sessionsOn("2024-03-08", "2024-03-09", "2024-03-10"), today: "2024-03-13", current: 0, longest: 3},
		{name: "one day gap after run", sessions: sessionsOn("2024-03-08", "2024-03-09", "2024-03-10"), today: "2024-03-11", current: 3, longest: 3},
		{name: "isolated old session", sessions: sessionsOn("2024-03-05", "2024-03-09", "2024-03-10"), today: "2024-03-10", current: 2, longest: 2},
		{name: "longest is in the past", sessions: sessionsOn("2024-02-01", "2024-02-02", "2024-02-03", "2024-02-04", "2024-03-10"), today: "2024-03-10", current: 1, longest: 4},
		{name: "unordered input", sessions: sessionsOn("2024-03-10", "2024-03-08", "2024-03-09"), today: "2024-03-10", current: 3, longest: 3},
		{name: "across month boundary", sessions: sessionsOn("2024-02-28", "2024-02-29", "2024-03-01"), today: "2024-03-01", current: 3, longest: 3},
		{name: "malformed day ignored", sessions: sessionsOn("garbage", "2024-03-10"), today: "2024-03-10", current: 1, longest: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeStreak(tc.sessions, at(tc.today))
			assert.Equal(t, tc.current, got.Current, "current")
			assert.Equal(t, tc.longest, got.Longest, "longest")
			assert.Equal(t, len(tc.sessions), got.TotalSessions)
			assert.Equal(t, 10*len(tc.sessions), got.TotalMinutes)
		})
	}
}

func TestComputeStreak_Totals(t *testing.T) {
	sessions := []models.StudySession{
		{Date: "2024-03-09", DurationMinutes: 75},
		{Date: "2024-03-10", DurationMinutes: 20},
	}

	got := ComputeStreak(sessions, at("2024-03-10"))

	assert.Equal(t, models.Streak{Current: 2, Longest: 2, TotalSessions: 2, TotalMinutes: 95}, got)
}

func TestCurrentStreak_TodayIsUTC(t *testing.T) {
	days := daySet([]string{"2024-03-10"})
	// 20:00 on the 9th in UTC-5 is already the 10th in UTC
	local := time.Date(2024, 3, 9, 20, 0, 0, 0, time.FixedZone("EST", -5*60*60))

	assert.Equal(t, 1, CurrentStreak(days, local))
}
