package backend

import (
	"context"

	"github.com/configo-dev/configo/pkg/models"
)

// FallbackEstimate is the fixed duration estimate returned when no plan
// generator is available.
const FallbackEstimate = "5-10 minutes"

// FallbackSuggester returns empty suggestions. It never fails, so callers
// see a degraded result instead of an error dialog.
type FallbackSuggester struct{}

func (FallbackSuggester) SuggestStack(ctx context.Context, description string) (*models.Suggestion, error) {
	return &models.Suggestion{
		Tools:   []*models.Step{},
		Portals: []*models.Portal{},
	}, nil
}

func (FallbackSuggester) Available() bool { return false }

// FallbackPlanner returns an empty plan with a fixed time estimate.
type FallbackPlanner struct{}

func (FallbackPlanner) GeneratePlan(ctx context.Context, description string) (*models.Plan, error) {
	return &models.Plan{
		Description:   description,
		Steps:         []*models.Step{},
		EstimatedTime: FallbackEstimate,
	}, nil
}

func (FallbackPlanner) Available() bool { return false }

// FallbackValidator reports every tool as not validated.
type FallbackValidator struct{}

func (FallbackValidator) ValidateTool(ctx context.Context, name string) bool { return false }

func (FallbackValidator) Available() bool { return false }

// FallbackInspector reports an unknown system with no package managers.
type FallbackInspector struct{}

func (FallbackInspector) Inspect(ctx context.Context) *models.SystemInfo {
	return &models.SystemInfo{
		OS:              "unknown",
		PackageManagers: []string{},
	}
}

func (FallbackInspector) Available() bool { return false }

// FallbackScanner reports an empty project.
type FallbackScanner struct{}

func (FallbackScanner) Scan(path string) (*models.ProjectInfo, error) {
	return &models.ProjectInfo{
		Path:        path,
		Languages:   []string{},
		Frameworks:  []string{},
		MarkerFiles: []string{},
	}, nil
}

func (FallbackScanner) Available() bool { return false }

// FallbackChat returns a fixed notice that the assistant is offline.
type FallbackChat struct{}

func (FallbackChat) Chat(ctx context.Context, message string) (string, error) {
	return "The CONFIGO assistant is not available. Set ANTHROPIC_API_KEY to enable it.", nil
}

func (FallbackChat) Available() bool { return false }

// Compile-time interface checks for every fallback.
var (
	_ StackSuggester  = FallbackSuggester{}
	_ PlanGenerator   = FallbackPlanner{}
	_ ToolValidator   = FallbackValidator{}
	_ SystemInspector = FallbackInspector{}
	_ ProjectScanner  = FallbackScanner{}
	_ ChatAgent       = FallbackChat{}
)
