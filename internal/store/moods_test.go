package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
)

func TestMoods(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := mustUser(t, s, "alice@example.com")
	bob := mustUser(t, s, "bob@example.com")

	energy := 4
	first, err := s.CreateMood(ctx, alice, MoodInput{MoodScore: 3, EnergyLevel: &energy, Notes: strPtr("tired")})
	require.NoError(t, err)
	second, err := s.CreateMood(ctx, alice, MoodInput{MoodScore: 5})
	require.NoError(t, err)

	moods, err := s.ListMoods(ctx, alice, DefaultLimit)
	require.NoError(t, err)
	require.Len(t, moods, 2)
	assert.Equal(t, second.ID, moods[0].ID)
	assert.Equal(t, first.ID, moods[1].ID)
	assert.Equal(t, 4, *moods[1].EnergyLevel)
	assert.Nil(t, moods[1].StressLevel)

	assert.True(t, apperr.Is(s.DeleteMood(ctx, bob, first.ID), apperr.Forbidden))
	require.NoError(t, s.DeleteMood(ctx, alice, first.ID))

	moods, err = s.ListMoods(ctx, alice, DefaultLimit)
	require.NoError(t, err)
	assert.Len(t, moods, 1)
}

func TestMoodDays_Distinct(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := mustUser(t, s, "alice@example.com")

	stamps := []time.Time{
		time.Date(2024, 3, 8, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC),
	}
	for _, ts := range stamps {
		ts := ts
		s.SetClock(func() time.Time { return ts })
		_, err := s.CreateMood(ctx, alice, MoodInput{MoodScore: 3})
		require.NoError(t, err)
	}

	days, err := s.MoodDays(ctx, alice)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"2024-03-08", "2024-03-09"}, days)
}
