package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
	"github.com/AnshRaj112/studentflow-backend/internal/models"
	"github.com/AnshRaj112/studentflow-backend/internal/store"
)

const (
	DefaultGeneratedCards = 5
	MaxGeneratedCards     = 20
)

// ErrMalformedFlashcards means the provider answered but not with a usable card list.
var ErrMalformedFlashcards = apperr.New(apperr.ServerError, "AI returned malformed flashcard data")

type FlashcardStore interface {
	GetNote(ctx context.Context, owner, id string) (*models.Note, error)
	CreateFlashcards(ctx context.Context, owner string, inputs []store.FlashcardInput) ([]models.Flashcard, error)
}

// ClampCardCount defaults zero to DefaultGeneratedCards and bounds n to 1..MaxGeneratedCards.
func ClampCardCount(n int) int {
	switch {
	case n == 0:
		return DefaultGeneratedCards
	case n < 1:
		return 1
	case n > MaxGeneratedCards:
		return MaxGeneratedCards
	default:
		return n
	}
}

func flashcardPrompt(note *models.Note, count int) string {
	return fmt.Sprintf(`Create %d study flashcards from the following notes.
Respond with only a JSON array, no commentary. Each element must be an object
with a "question" string and an "answer" string.

Title: %s

%s`, count, note.Title, note.Content)
}

type GeneratedCard struct {
	Question string
	Answer   string
}

// ExtractFlashcards pulls the first JSON array out of generated text,
// tolerating code fences and prose around it.
func ExtractFlashcards(text string) ([]GeneratedCard, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, ErrMalformedFlashcards
	}

	raw := text[start : end+1]
	if !gjson.Valid(raw) {
		return nil, ErrMalformedFlashcards
	}

	var cards []GeneratedCard
	for _, item := range gjson.Parse(raw).Array() {
		q := strings.TrimSpace(item.Get("question").String())
		a := strings.TrimSpace(item.Get("answer").String())
		if q == "" || a == "" {
			continue
		}
		cards = append(cards, GeneratedCard{Question: q, Answer: a})
	}
	if len(cards) == 0 {
		return nil, ErrMalformedFlashcards
	}
	return cards, nil
}

// GenerateFlashcards asks the provider for cards from one of owner's notes and stores them.
// Cards inherit the note's subject and reference it as their source.
func (s *AIService) GenerateFlashcards(ctx context.Context, owner, noteID string, count int) ([]models.Flashcard, error) {
	if !s.Enabled() {
		return nil, ErrAIUnavailable
	}

	note, err := s.cards.GetNote(ctx, owner, noteID)
	if err != nil {
		return nil, err
	}

	count = ClampCardCount(count)
	text, err := s.generate(ctx, flashcardPrompt(note, count))
	if err != nil {
		return nil, err
	}

	generated, err := ExtractFlashcards(text)
	if err != nil {
		return nil, err
	}
	if len(generated) > count {
		generated = generated[:count]
	}

	inputs := make([]store.FlashcardInput, 0, len(generated))
	for _, g := range generated {
		inputs = append(inputs, store.FlashcardInput{
			Question:   g.Question,
			Answer:     g.Answer,
			Subject:    note.Subject,
			Difficulty: models.DifficultyMedium,
			NoteID:     &note.ID,
		})
	}
	return s.cards.CreateFlashcards(ctx, owner, inputs)
}
