package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
)

func TestAIService_DegradedMode(t *testing.T) {
	ctx := context.Background()
	ai := NewAIService(nil, nil)

	_, err := ai.Summarize(ctx, "notes")
	assert.True(t, errors.Is(err, ErrAIUnavailable))

	_, err = ai.StudyPlan(ctx, StudyPlanRequest{})
	assert.True(t, errors.Is(err, ErrAIUnavailable))

	_, err = ai.Chat(ctx, "hi", nil)
	assert.True(t, errors.Is(err, ErrAIUnavailable))

	_, err = ai.GenerateFlashcards(ctx, "owner", "note", 3)
	assert.True(t, errors.Is(err, ErrAIUnavailable))
}

func TestAIService_ProviderFailure(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("gemini returned 500: internal")}
	ai := NewAIService(gen, nil)

	_, err := ai.Summarize(context.Background(), "notes")

	assert.True(t, apperr.Is(err, apperr.ProviderError))
	assert.False(t, errors.Is(err, ErrAIUnavailable))
}

func TestAIService_Summarize(t *testing.T) {
	gen := &fakeGenerator{reply: "Short."}
	ai := NewAIService(gen, nil)

	summary, err := ai.Summarize(context.Background(), "Photosynthesis converts light.")

	require.NoError(t, err)
	assert.Equal(t, "Short.", summary)
	assert.Contains(t, gen.lastPrompt(), "2-3 sentences")
	assert.True(t, strings.HasSuffix(gen.lastPrompt(), "Photosynthesis converts light."))
}

func TestAIService_StudyPlan(t *testing.T) {
	gen := &fakeGenerator{reply: "## Day 1\n\n- Read **chapter 1**\n"}
	ai := NewAIService(gen, nil)

	plan, err := ai.StudyPlan(context.Background(), StudyPlanRequest{Topics: []string{" Limits ", "", "Derivatives"}})

	require.NoError(t, err)
	assert.Equal(t, gen.reply, plan.Markdown)
	assert.Contains(t, plan.HTML, "<h2>Day 1</h2>")
	assert.Contains(t, plan.HTML, "<strong>chapter 1</strong>")

	prompt := gen.lastPrompt()
	assert.Contains(t, prompt, "Subject: General Studies")
	assert.Contains(t, prompt, "Topics to cover: Limits, Derivatives")
	assert.Contains(t, prompt, "Timeline: one week")
	assert.Contains(t, prompt, "Difficulty level: intermediate")
}

func TestAIService_Chat(t *testing.T) {
	gen := &fakeGenerator{reply: "Sure."}
	ai := NewAIService(gen, nil)

	var history []ChatTurn
	for i := 1; i <= 8; i++ {
		role := "user"
		if i%2 == 0 {
			role = "assistant"
		}
		history = append(history, ChatTurn{Role: role, Content: fmt.Sprintf("turn-%d", i)})
	}

	answer, err := ai.Chat(context.Background(), "  What next?  ", history)
	require.NoError(t, err)
	assert.Equal(t, "Sure.", answer)

	prompt := gen.lastPrompt()
	assert.NotContains(t, prompt, "turn-1\n")
	assert.NotContains(t, prompt, "turn-2\n")
	assert.Contains(t, prompt, "User: turn-3")
	assert.Contains(t, prompt, "Assistant: turn-8")
	assert.True(t, strings.HasSuffix(prompt, "User: What next?\nAssistant:"))
}

func TestAIService_ChatEmptyMessage(t *testing.T) {
	ai := NewAIService(&fakeGenerator{}, nil)

	_, err := ai.Chat(context.Background(), "   ", nil)

	assert.True(t, apperr.Is(err, apperr.Validation))
}
