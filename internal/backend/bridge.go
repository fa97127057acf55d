// Package backend provides the bridge between the CONFIGO frontend and the
// optional CLI backend. Every capability is always callable: when the real
// backend cannot be bound, a safe fallback takes its place and the
// application keeps working in a degraded mode.
package backend

import (
	"context"

	"github.com/configo-dev/configo/internal/config"
	"github.com/configo-dev/configo/internal/exec"
	"github.com/configo-dev/configo/pkg/models"
)

// StackSuggester proposes tools and portals for a described environment.
type StackSuggester interface {
	// SuggestStack maps a free-text environment description to tool and
	// portal suggestions. Fallback implementations return empty lists
	// and a nil error, never a failure.
	SuggestStack(ctx context.Context, description string) (*models.Suggestion, error)
	// Available reports whether this is backed by a real implementation.
	Available() bool
}

// PlanGenerator turns an environment description into an installation plan.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, description string) (*models.Plan, error)
	Available() bool
}

// ToolValidator checks whether a named tool is properly installed.
type ToolValidator interface {
	ValidateTool(ctx context.Context, name string) bool
	Available() bool
}

// SystemInspector reports on the host system.
type SystemInspector interface {
	Inspect(ctx context.Context) *models.SystemInfo
	Available() bool
}

// ProjectScanner inspects a project directory for its technology stack.
type ProjectScanner interface {
	Scan(path string) (*models.ProjectInfo, error)
	Available() bool
}

// ChatAgent answers free-form setup questions.
type ChatAgent interface {
	Chat(ctx context.Context, message string) (string, error)
	Available() bool
}

// Bridge carries one binding per capability. It is constructed once at
// startup and passed down explicitly; there is no process-wide instance
// and the availability decision is never re-evaluated.
type Bridge struct {
	Suggester StackSuggester
	Planner   PlanGenerator
	Validator ToolValidator
	Inspector SystemInspector
	Scanner   ProjectScanner
	Chat      ChatAgent

	// CLIPath is the discovered CLI backend checkout, empty if none
	// was found during probing.
	CLIPath string
}

// Options carries the dependencies needed to construct a Bridge.
type Options struct {
	Config *config.Config
	Runner exec.CommandRunner
	// Inspector and Scanner may be pre-built by the caller; nil means
	// the bridge binds fallbacks for them.
	Inspector SystemInspector
	Scanner   ProjectScanner
	Validator ToolValidator
}

// New builds a Bridge. LLM-backed capabilities are bound when an API key
// (or Bedrock access) is configured; everything else falls back. Local
// capabilities (inspector, scanner, validator) are bound from the caller
// when provided.
func New(opts Options) *Bridge {
	b := &Bridge{
		Suggester: FallbackSuggester{},
		Planner:   FallbackPlanner{},
		Validator: FallbackValidator{},
		Inspector: FallbackInspector{},
		Scanner:   FallbackScanner{},
		Chat:      FallbackChat{},
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	b.CLIPath = FindCLIBackend(cfg.Backend.SearchPaths)

	if client, err := NewLLMClient(cfg.Anthropic); err == nil {
		b.Suggester = &LLMSuggester{client: client}
		b.Planner = &LLMPlanner{client: client}
		b.Chat = &LLMChat{client: client}
	}

	if opts.Inspector != nil {
		b.Inspector = opts.Inspector
	}
	if opts.Scanner != nil {
		b.Scanner = opts.Scanner
	}
	if opts.Validator != nil {
		b.Validator = opts.Validator
	}

	return b
}

// Degraded reports whether any capability is running on a fallback.
func (b *Bridge) Degraded() bool {
	return !b.Suggester.Available() ||
		!b.Planner.Available() ||
		!b.Validator.Available() ||
		!b.Inspector.Available() ||
		!b.Scanner.Available() ||
		!b.Chat.Available()
}
