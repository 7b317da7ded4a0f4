package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Summary string  `json:"summary"`
	Mood    float64 `json:"mood"`
}

type testStep struct {
	Title     string `json:"title"`
	EffortMin int    `json:"effort_min"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"summary":"steady week","mood":0.95}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "steady week", result.Summary)
	assert.Equal(t, 0.95, result.Mood)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"summary\":\"good focus\",\"mood\":0.88}\n```"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "good focus", result.Summary)
	assert.Equal(t, 0.88, result.Mood)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Here is the weekly summary:\n{\"summary\":\"slow start\",\"mood\":0.72}\nHope that helps!"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "slow start", result.Summary)
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	type nested struct {
		Summary string            `json:"summary"`
		Areas   map[string]string `json:"areas"`
	}
	raw := `{"summary":"mixed","areas":{"work":"on track"}}`
	result, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "mixed", result.Summary)
	assert.Equal(t, "on track", result.Areas["work"])
}

func TestExtractJSON_NoJSON(t *testing.T) {
	raw := "I don't know what you mean."
	_, err := ExtractJSON[testPayload](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	raw := `{"summary":"steady week", broken}`
	_, err := ExtractJSON[testPayload](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	raw := `{"summary":"steady week","mood":1.5}`
	validator := func(p testPayload) error {
		if p.Mood < 0 || p.Mood > 1 {
			return fmt.Errorf("mood must be in [0,1], got %f", p.Mood)
		}
		return nil
	}
	_, err := ExtractJSON(raw, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExtractJSON_ValidationSuccess(t *testing.T) {
	raw := `{"summary":"good focus","mood":0.9}`
	validator := func(p testPayload) error {
		if p.Mood < 0 || p.Mood > 1 {
			return fmt.Errorf("mood out of range")
		}
		return nil
	}
	result, err := ExtractJSON(raw, validator)
	require.NoError(t, err)
	assert.Equal(t, "good focus", result.Summary)
}

func TestExtractJSON_LeadingDecimalNormalized(t *testing.T) {
	raw := `{"summary":"steady week","mood":.8}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.8, result.Mood)
}

func TestExtractJSON_MultipleFences(t *testing.T) {
	raw := "Some text\n```\n{\"summary\":\"good focus\",\"mood\":0.8}\n```\nMore text"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "good focus", result.Summary)
}

func TestExtractJSONArray_CleanArray(t *testing.T) {
	raw := `[{"title":"Outline chapters","effort_min":30},{"title":"Draft intro","effort_min":60}]`
	steps, err := ExtractJSONArray[testStep](raw, nil)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "Outline chapters", steps[0].Title)
	assert.Equal(t, 60, steps[1].EffortMin)
}

func TestExtractJSONArray_FencedWithProse(t *testing.T) {
	raw := "Here is the breakdown:\n```json\n[{\"title\":\"Research venues\",\"effort_min\":45}]\n```"
	steps, err := ExtractJSONArray[testStep](raw, nil)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, "Research venues", steps[0].Title)
}

func TestExtractJSONArray_NestedArraysBalanced(t *testing.T) {
	type withTags struct {
		Title string   `json:"title"`
		Tags  []string `json:"tags"`
	}
	raw := `[{"title":"Plan sprint","tags":["a","b"]}]`
	steps, err := ExtractJSONArray[withTags](raw, nil)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, []string{"a", "b"}, steps[0].Tags)
}

func TestExtractJSONArray_NoArray(t *testing.T) {
	_, err := ExtractJSONArray[testStep]("no structure here", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSONArray_ValidationFailure(t *testing.T) {
	raw := `[{"title":"","effort_min":30}]`
	validator := func(steps []testStep) error {
		for _, s := range steps {
			if s.Title == "" {
				return fmt.Errorf("empty title")
			}
		}
		return nil
	}
	_, err := ExtractJSONArray(raw, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
