package services

import (
	"sort"
	"time"

	"github.com/AnshRaj112/studentflow-backend/internal/models"
)

// dayOf truncates t to its UTC calendar day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daySet parses YYYY-MM-DD strings into a set of UTC days, skipping malformed entries.
func daySet(days []string) map[time.Time]bool {
	set := make(map[time.Time]bool, len(days))
	for _, s := range days {
		d, err := time.Parse(models.DayLayout, s)
		if err != nil {
			continue
		}
		set[d] = true
	}
	return set
}

// CurrentStreak counts consecutive days ending today. If today is missing the
// walk starts at yesterday, so an unlogged today does not break the streak.
func CurrentStreak(days map[time.Time]bool, today time.Time) int {
	cursor := dayOf(today)
	if !days[cursor] {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for days[cursor] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak is the longest run of consecutive days in the set.
func LongestStreak(days map[time.Time]bool) int {
	sorted := make([]time.Time, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	longest, run := 0, 0
	for i, d := range sorted {
		if i > 0 && sorted[i-1].AddDate(0, 0, 1).Equal(d) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// ComputeStreak derives streak statistics from one owner's study sessions.
func ComputeStreak(sessions []models.StudySession, today time.Time) models.Streak {
	days := make([]string, 0, len(sessions))
	total := 0
	for _, s := range sessions {
		days = append(days, s.Date)
		total += s.DurationMinutes
	}

	set := daySet(days)
	return models.Streak{
		Current:       CurrentStreak(set, today),
		Longest:       LongestStreak(set),
		TotalSessions: len(sessions),
		TotalMinutes:  total,
	}
}
