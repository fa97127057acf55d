package backend

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/configo-dev/configo/pkg/models"
)

// suggestionPayload mirrors the JSON the model is asked to produce.
type suggestionPayload struct {
	Tools         []toolPayload   `json:"tools"`
	Portals       []portalPayload `json:"portals"`
	EstimatedTime string          `json:"estimated_time"`
}

type toolPayload struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	InstallCommand string   `json:"install_command"`
	CheckCommand   string   `json:"check_command"`
	Dependencies   []string `json:"dependencies"`
}

type portalPayload struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// ParseSuggestion extracts tool and portal suggestions from model output.
// The model is prompted for bare JSON but may wrap it in prose or code
// fences; parsing starts at the first '{' and ends at the last '}'.
func ParseSuggestion(text string) (*models.Suggestion, error) {
	payload, err := decodePayload(text)
	if err != nil {
		return nil, err
	}

	suggestion := &models.Suggestion{
		Tools:   make([]*models.Step, 0, len(payload.Tools)),
		Portals: make([]*models.Portal, 0, len(payload.Portals)),
	}
	for _, t := range payload.Tools {
		suggestion.Tools = append(suggestion.Tools, toolToStep(t))
	}
	for _, p := range payload.Portals {
		suggestion.Portals = append(suggestion.Portals, &models.Portal{
			Name:        p.Name,
			DisplayName: p.DisplayName,
			URL:         p.URL,
			Description: p.Description,
		})
	}
	return suggestion, nil
}

// ParsePlan extracts an installation plan from model output.
func ParsePlan(text string) (*models.Plan, error) {
	payload, err := decodePayload(text)
	if err != nil {
		return nil, err
	}

	plan := &models.Plan{
		Steps:         make([]*models.Step, 0, len(payload.Tools)),
		EstimatedTime: payload.EstimatedTime,
	}
	if plan.EstimatedTime == "" {
		plan.EstimatedTime = FallbackEstimate
	}
	for _, t := range payload.Tools {
		plan.Steps = append(plan.Steps, toolToStep(t))
	}
	return plan, nil
}

func toolToStep(t toolPayload) *models.Step {
	return &models.Step{
		Name:           t.Name,
		Description:    t.Description,
		InstallCommand: t.InstallCommand,
		CheckCommand:   t.CheckCommand,
		Dependencies:   t.Dependencies,
		Status:         models.StepStatusPending,
	}
}

func decodePayload(text string) (*suggestionPayload, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	payload := &suggestionPayload{}
	if err := json.Unmarshal([]byte(text[start:end+1]), payload); err != nil {
		return nil, fmt.Errorf("decoding model output: %w", err)
	}
	return payload, nil
}
