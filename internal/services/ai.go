package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
)

// Generator produces text for a prompt. *gemini.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrAIUnavailable means no provider credential is configured.
var ErrAIUnavailable = apperr.New(apperr.Unavailable, "AI not configured. Set GEMINI_API_KEY or GOOGLE_API_KEY in .env")

const (
	SummaryUnavailableText   = "⚠️ AI summarization not configured. Please add your Gemini API key to the .env file."
	StudyPlanUnavailableText = "⚠️ AI study plan generation not configured. Please add your Gemini API key to the .env file."

	chatHistoryTurns = 6
)

// AIService builds prompts and post-processes provider output.
// A nil generator puts every feature in degraded mode.
type AIService struct {
	gen   Generator
	cards FlashcardStore
}

func NewAIService(gen Generator, cards FlashcardStore) *AIService {
	return &AIService{gen: gen, cards: cards}
}

func (s *AIService) Enabled() bool {
	return s.gen != nil
}

func (s *AIService) generate(ctx context.Context, prompt string) (string, error) {
	if s.gen == nil {
		return "", ErrAIUnavailable
	}
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		log.Printf("⚠️  AI provider call failed: %v", err)
		return "", apperr.Wrap(apperr.ProviderError, "AI provider request failed", err)
	}
	return text, nil
}

// Summarize returns a 2-3 sentence summary of content.
func (s *AIService) Summarize(ctx context.Context, content string) (string, error) {
	prompt := "Provide a clear, concise summary of the following notes in 2-3 sentences. " +
		"Focus on the main points and key takeaways:\n\n" + content
	return s.generate(ctx, prompt)
}

type StudyPlanRequest struct {
	Subject    string
	Topics     []string
	Timeline   string
	Difficulty string
}

func (r StudyPlanRequest) withDefaults() StudyPlanRequest {
	if strings.TrimSpace(r.Subject) == "" {
		r.Subject = "General Studies"
	}
	if strings.TrimSpace(r.Timeline) == "" {
		r.Timeline = "one week"
	}
	if strings.TrimSpace(r.Difficulty) == "" {
		r.Difficulty = "intermediate"
	}

	topics := make([]string, 0, len(r.Topics))
	for _, t := range r.Topics {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	r.Topics = topics
	return r
}

func studyPlanPrompt(r StudyPlanRequest) string {
	r = r.withDefaults()
	return fmt.Sprintf(`Create a detailed study plan with the following specifications:

Subject: %s
Topics to cover: %s
Timeline: %s
Difficulty level: %s

Please provide:
1. A day-by-day breakdown of what to study
2. Recommended time allocation for each topic
3. Study methods and techniques
4. Practice exercises or activities
5. Tips for retaining information

Format the plan clearly with headers and bullet points.`,
		strings.TrimSpace(r.Subject), strings.Join(r.Topics, ", "),
		strings.TrimSpace(r.Timeline), strings.TrimSpace(r.Difficulty))
}

type StudyPlan struct {
	Markdown string
	HTML     string
}

// StudyPlan generates a plan and renders it to HTML when it looks like markdown.
func (s *AIService) StudyPlan(ctx context.Context, r StudyPlanRequest) (*StudyPlan, error) {
	text, err := s.generate(ctx, studyPlanPrompt(r))
	if err != nil {
		return nil, err
	}
	return &StudyPlan{Markdown: text, HTML: RenderMarkdown(text)}, nil
}

type ChatTurn struct {
	Role    string
	Content string
}

func chatPrompt(message string, history []ChatTurn) string {
	if len(history) > chatHistoryTurns {
		history = history[len(history)-chatHistoryTurns:]
	}

	lines := make([]string, 0, len(history))
	for _, turn := range history {
		if turn.Role == "user" {
			lines = append(lines, "User: "+turn.Content)
		} else {
			lines = append(lines, "Assistant: "+turn.Content)
		}
	}

	return fmt.Sprintf(`You are StudentFlow's helpful study assistant.
Keep answers concise and helpful for students.

%s
User: %s
Assistant:`, strings.Join(lines, "\n"), message)
}

// Chat answers message with the last few turns of history folded into the prompt.
func (s *AIService) Chat(ctx context.Context, message string, history []ChatTurn) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", apperr.Invalid("Empty message")
	}
	return s.generate(ctx, chatPrompt(message, history))
}
