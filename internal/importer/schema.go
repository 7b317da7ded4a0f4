package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a goal import.
type ImportSchema struct {
	Goal  GoalImport   `json:"goal"`
	Tasks []TaskImport `json:"tasks"`
}

// GoalImport defines the goal-level fields in the import file.
type GoalImport struct {
	Title    string  `json:"title"`
	Why      string  `json:"why,omitempty"`
	KGI      string  `json:"kgi,omitempty"`
	Area     string  `json:"area,omitempty"`
	Deadline *string `json:"deadline,omitempty"`
}

// TaskImport defines a task in the import file.
type TaskImport struct {
	Title     string  `json:"title"`
	Status    string  `json:"status,omitempty"`
	Impact    *int    `json:"impact,omitempty"`
	EffortMin *int    `json:"effort_min,omitempty"`
	Due       *string `json:"due,omitempty"`
}

// LoadImportSchema reads and parses a goal import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
