// Package detect finds already-installed tools so plans can skip them.
package detect

import (
	"context"
	"strings"
	"time"

	"github.com/configo-dev/configo/internal/exec"
	"github.com/configo-dev/configo/pkg/models"
)

// versionTimeout bounds the --version probe per tool.
const versionTimeout = 5 * time.Second

// Detection describes one probed tool.
type Detection struct {
	// Name is the tool name from the plan step.
	Name string
	// Installed reports whether the tool's executable is on PATH.
	Installed bool
	// Version is the first line of `--version` output, if it ran.
	Version string
}

// Detector probes plan steps for tools that are already present.
type Detector struct {
	runner exec.CommandRunner
}

// New creates a Detector.
func New(runner exec.CommandRunner) *Detector {
	return &Detector{runner: runner}
}

// DetectStep probes a single step's tool. The executable name is the
// first word of the check command when present, otherwise the lowercased
// tool name.
func (d *Detector) DetectStep(ctx context.Context, step *models.Step) Detection {
	det := Detection{Name: step.Name}

	executable := executableFor(step)
	if executable == "" || !d.runner.LookPath(executable) {
		return det
	}
	det.Installed = true

	vctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()
	out, err := d.runner.Run(vctx, "", executable, "--version")
	if err == nil {
		if line, _, _ := strings.Cut(string(out), "\n"); line != "" {
			det.Version = strings.TrimSpace(line)
		}
	}
	return det
}

// MarkInstalled probes every pending step and flips steps whose tool is
// already present to skipped. It returns the detections in plan order.
func (d *Detector) MarkInstalled(ctx context.Context, plan *models.Plan) []Detection {
	detections := make([]Detection, 0, plan.Len())
	for _, step := range plan.Steps {
		det := d.DetectStep(ctx, step)
		if det.Installed && step.Status == models.StepStatusPending {
			step.Status = models.StepStatusSkipped
		}
		detections = append(detections, det)
	}
	return detections
}

// executableFor picks the executable to probe for a step.
func executableFor(step *models.Step) string {
	if fields := strings.Fields(step.CheckCommand); len(fields) > 0 {
		return fields[0]
	}
	return strings.ToLower(strings.TrimSpace(step.Name))
}
