// Package heuristic generates installation plans from keyword matching.
// It is the explicit offline alternative to the LLM planner: useful on
// airgapped machines, and predictable enough to test against. It is never
// substituted silently for the bridge fallback.
package heuristic

import (
	"context"
	"strings"
	"time"

	"github.com/configo-dev/configo/pkg/models"
)

// rule maps description keywords to the steps they imply.
type rule struct {
	keywords []string
	steps    []models.Step
}

var rules = []rule{
	{
		keywords: []string{"python", "data science", "machine learning"},
		steps: []models.Step{
			{
				Name:           "Python 3",
				Description:    "Python interpreter and pip",
				InstallCommand: "sudo apt update && sudo apt install python3 python3-pip -y",
				CheckCommand:   "python3 --version",
			},
			{
				Name:           "Jupyter",
				Description:    "Interactive notebooks with pandas, numpy, matplotlib",
				InstallCommand: "pip3 install jupyter pandas numpy matplotlib",
				CheckCommand:   "jupyter --version",
				Dependencies:   []string{"Python 3"},
			},
		},
	},
	{
		keywords: []string{"node", "javascript", "web", "frontend"},
		steps: []models.Step{
			{
				Name:           "Node.js",
				Description:    "Node.js runtime and npm",
				InstallCommand: "curl -fsSL https://deb.nodesource.com/setup_18.x | sudo -E bash - && sudo apt-get install -y nodejs",
				CheckCommand:   "node --version",
			},
		},
	},
	{
		keywords: []string{"git", "version control"},
		steps: []models.Step{
			{
				Name:           "Git",
				Description:    "Distributed version control",
				InstallCommand: "sudo apt install git -y",
				CheckCommand:   "git --version",
			},
		},
	},
	{
		keywords: []string{"docker", "container"},
		steps: []models.Step{
			{
				Name:           "Docker",
				Description:    "Container runtime",
				InstallCommand: "sudo apt install docker.io -y && sudo systemctl enable --now docker",
				CheckCommand:   "docker --version",
			},
		},
	},
	{
		keywords: []string{"postgres", "database"},
		steps: []models.Step{
			{
				Name:           "PostgreSQL",
				Description:    "Relational database server",
				InstallCommand: "sudo apt install postgresql postgresql-contrib -y",
				CheckCommand:   "psql --version",
			},
		},
	},
	{
		keywords: []string{"rust"},
		steps: []models.Step{
			{
				Name:           "Rust",
				Description:    "Rust toolchain via rustup",
				InstallCommand: "curl --proto '=https' --tlsv1.2 -sSf https://sh.rustup.rs | sh -s -- -y",
				CheckCommand:   "rustc --version",
			},
		},
	},
	{
		keywords: []string{"go ", "golang"},
		steps: []models.Step{
			{
				Name:           "Go",
				Description:    "Go toolchain",
				InstallCommand: "sudo apt install golang-go -y",
				CheckCommand:   "go version",
			},
		},
	},
}

// Planner implements keyword-based plan generation.
type Planner struct{}

// New creates a Planner.
func New() *Planner {
	return &Planner{}
}

// GeneratePlan matches keywords in the description against the rule
// table. Unrecognized descriptions produce an empty plan, not an error.
func (p *Planner) GeneratePlan(ctx context.Context, description string) (*models.Plan, error) {
	lower := strings.ToLower(description)

	plan := &models.Plan{
		Description:   description,
		Steps:         []*models.Step{},
		EstimatedTime: "5-10 minutes",
		GeneratedAt:   time.Now(),
	}

	seen := map[string]bool{}
	for _, r := range rules {
		if !matches(lower, r.keywords) {
			continue
		}
		for _, s := range r.steps {
			if seen[s.Name] {
				continue
			}
			seen[s.Name] = true
			step := s
			step.Status = models.StepStatusPending
			plan.Steps = append(plan.Steps, &step)
		}
	}

	return plan, nil
}

// Available reports that this is a real implementation.
func (p *Planner) Available() bool { return true }

func matches(description string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(description, kw) {
			return true
		}
	}
	return false
}
