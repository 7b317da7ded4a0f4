package wbs

import (
	"context"
	"fmt"
	"time"

	"github.com/kawatsu/compass/internal/domain"
	"github.com/kawatsu/compass/internal/llm"
)

// Drafter proposes an ordered task breakdown for a goal. Drafting never
// fails: implementations degrade to the rule-based template.
type Drafter interface {
	Draft(ctx context.Context, goal domain.Goal, req Request) []Step
}

// RuleBasedDrafter emits a generic project skeleton without a model call.
type RuleBasedDrafter struct{}

func (RuleBasedDrafter) Draft(_ context.Context, _ domain.Goal, req Request) []Step {
	return ruleDraft(req)
}

func ruleDraft(req Request) []Step {
	base := []Step{
		{Title: "Write one paragraph on purpose and scope", EffortMin: 10, Impact: 3},
		{Title: "Sketch the outline and milestones", EffortMin: 20, Impact: 3},
		{Title: "Build the smallest working skeleton", EffortMin: 40, Impact: 5},
		{Title: "Rough out the first major piece", EffortMin: 60, Impact: 5},
		{Title: "Rough out the second major piece", EffortMin: 60, Impact: 4},
		{Title: "Update the notes and README", EffortMin: 30, Impact: 2},
		{Title: "Walk through end to end and list gaps", EffortMin: 30, Impact: 3},
	}
	req = req.Normalize()
	if len(base) > req.MaxTasks {
		base = base[:req.MaxTasks]
	}
	return base
}

const draftSystemPrompt = `You are an expert at execution planning. Be short and concrete, and order steps by execution.`

const draftUserPromptTemplate = `Goal: %s
Why: %s
KGI: %s
Deadline: %s

Constraints:
- Each task should take roughly 30-60 minutes (the first two may be 5-10 minute warm-ups)
- Order by execution, respecting dependencies
- Output a JSON array only. Each element is {"title", "effort_min", "impact", "due" (may be null), "prereq_ids" (may be [])}.

Example:
[
  {"title":"Write just the README section headers","effort_min":10,"impact":3,"due":null,"prereq_ids":[]},
  {"title":"Create the API skeleton","effort_min":45,"impact":5,"due":null,"prereq_ids":[0]}
]

Now output at most %d items.`

type draftStep struct {
	Title     string  `json:"title"`
	EffortMin int     `json:"effort_min"`
	Impact    int     `json:"impact"`
	Due       *string `json:"due"`
	PrereqIDs []int   `json:"prereq_ids"`
}

type llmDrafter struct {
	client llm.LLMClient
}

// NewLLMDrafter creates a Drafter backed by an LLM client, with the
// rule-based template as its fallback.
func NewLLMDrafter(client llm.LLMClient) Drafter {
	return &llmDrafter{client: client}
}

func (d *llmDrafter) Draft(ctx context.Context, goal domain.Goal, req Request) []Step {
	req = req.Normalize()

	deadline := "none"
	if goal.Deadline != nil {
		deadline = goal.Deadline.Format("2006-01-02")
	}

	resp, err := d.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskWBS,
		SystemPrompt: draftSystemPrompt,
		UserPrompt:   fmt.Sprintf(draftUserPromptTemplate, goal.Title, goal.Why, goal.KGI, deadline, req.MaxTasks),
	})
	if err != nil {
		return ruleDraft(req)
	}

	raw, err := llm.ExtractJSONArray[draftStep](resp.Text, nil)
	if err != nil || len(raw) == 0 {
		return ruleDraft(req)
	}

	steps := make([]Step, 0, len(raw))
	for _, r := range raw {
		steps = append(steps, Step{
			Title:     r.Title,
			EffortMin: r.EffortMin,
			Impact:    r.Impact,
			Due:       parseDraftDue(r.Due),
			PrereqIDs: r.PrereqIDs,
		})
	}
	return steps
}

func parseDraftDue(due *string) *time.Time {
	if due == nil || *due == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *due)
	if err != nil {
		return nil
	}
	return &t
}
