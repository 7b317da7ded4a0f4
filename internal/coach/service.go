package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/kawatsu/compass/internal/domain"
	"github.com/kawatsu/compass/internal/llm"
)

// ReflectionSummary condenses recent reflections into a short review.
type ReflectionSummary struct {
	Summary      string   `json:"summary"`
	Improvements []string `json:"improvements"`
}

// Coach produces short motivational nudges and reflection summaries.
// Implementations never fail: when a model is unavailable they degrade to
// deterministic output.
type Coach interface {
	// LineForTask returns a one-sentence starter nudge for a task.
	LineForTask(ctx context.Context, task domain.Task) string

	// SummarizeReflections condenses the given reflections from the last
	// days into a summary and up to three improvement suggestions.
	SummarizeReflections(ctx context.Context, reflections []domain.Reflection, days int) ReflectionSummary
}

// RuleBasedCoach is the zero-dependency Coach used when the LLM is disabled.
type RuleBasedCoach struct{}

func (RuleBasedCoach) LineForTask(_ context.Context, task domain.Task) string {
	return DeterministicCoachLine(task)
}

func (RuleBasedCoach) SummarizeReflections(_ context.Context, _ []domain.Reflection, _ int) ReflectionSummary {
	return DeterministicSummary()
}

type llmCoach struct {
	client llm.LLMClient
}

// NewLLMCoach creates a Coach backed by an LLM client. Every failure path
// falls back to the rule-based output.
func NewLLMCoach(client llm.LLMClient) Coach {
	return &llmCoach{client: client}
}

func (c *llmCoach) LineForTask(ctx context.Context, task domain.Task) string {
	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskCoach,
		SystemPrompt: coachSystemPrompt,
		UserPrompt:   fmt.Sprintf(coachUserPromptTemplate, task.Title, task.EffectiveEffort()),
	})
	if err != nil {
		return DeterministicCoachLine(task)
	}
	line := strings.TrimSpace(resp.Text)
	if line == "" {
		return DeterministicCoachLine(task)
	}
	// Models occasionally wrap the sentence in quotes despite instructions.
	line = strings.Trim(line, "\"'")
	if first, _, found := strings.Cut(line, "\n"); found {
		line = first
	}
	return line
}

type summaryResponse struct {
	Summary      []string `json:"summary"`
	Improvements []string `json:"improvements"`
}

func (c *llmCoach) SummarizeReflections(ctx context.Context, reflections []domain.Reflection, days int) ReflectionSummary {
	if len(reflections) == 0 {
		return DeterministicSummary()
	}

	var b strings.Builder
	for _, r := range reflections {
		text := r.Text
		if len(text) > 240 {
			text = text[:240]
		}
		fmt.Fprintf(&b, "- %s (mood=%d) %s\n", r.Date.Format("2006-01-02"), r.Mood, text)
	}

	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSummary,
		SystemPrompt: summarySystemPrompt,
		UserPrompt:   fmt.Sprintf(summaryUserPromptTemplate, days, b.String()),
	})
	if err != nil {
		return DeterministicSummary()
	}

	parsed, err := llm.ExtractJSON[summaryResponse](resp.Text, nil)
	if err != nil {
		return DeterministicSummary()
	}

	summary := compact(parsed.Summary, 2)
	improvements := compact(parsed.Improvements, 3)
	if len(summary) == 0 {
		return DeterministicSummary()
	}
	if len(improvements) == 0 {
		improvements = DeterministicSummary().Improvements
	}
	return ReflectionSummary{
		Summary:      strings.Join(summary, " / "),
		Improvements: improvements,
	}
}

// compact drops blank entries and caps the slice at n.
func compact(items []string, n int) []string {
	var out []string
	for _, s := range items {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == n {
			break
		}
	}
	return out
}
