package state

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/configo-dev/configo/pkg/models"
)

// Run is one recorded installation run.
type Run struct {
	ID          string
	Description string
	StartedAt   time.Time
	FinishedAt  time.Time
	Total       int
	Successful  int
	Cancelled   bool
	Success     bool
}

// StepResult is the recorded outcome of a single step within a run.
type StepResult struct {
	RunID    string
	Position int
	Name     string
	Status   models.StepStatus
	Error    string
}

// StartRun records the beginning of an installation run.
func (db *DB) StartRun(id, description string, startedAt time.Time) error {
	_, err := db.Exec(
		"INSERT INTO runs (id, description, started_at) VALUES (?, ?, ?)",
		id, description, formatTime(startedAt),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// FinishRun records the outcome of a run and its per-step results.
func (db *DB) FinishRun(id string, finishedAt time.Time, total, successful int, cancelled, success bool, steps []StepResult) error {
	_, err := db.Exec(
		"UPDATE runs SET finished_at = ?, total = ?, successful = ?, cancelled = ?, success = ? WHERE id = ?",
		formatTime(finishedAt), total, successful, boolInt(cancelled), boolInt(success), id,
	)
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}

	for _, s := range steps {
		_, err := db.Exec(
			"INSERT INTO run_steps (run_id, position, name, status, error) VALUES (?, ?, ?, ?, ?)",
			id, s.Position, s.Name, string(s.Status), s.Error,
		)
		if err != nil {
			return fmt.Errorf("insert run step %s: %w", s.Name, err)
		}
	}
	return nil
}

// GetRun returns a single run by ID.
func (db *DB) GetRun(id string) (*Run, error) {
	row := db.QueryRow(
		"SELECT id, description, started_at, finished_at, total, successful, cancelled, success FROM runs WHERE id = ?",
		id,
	)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]*Run, error) {
	rows, err := db.Query(
		"SELECT id, description, started_at, finished_at, total, successful, cancelled, success FROM runs ORDER BY started_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunSteps returns the recorded step results for a run, in plan order.
func (db *DB) RunSteps(runID string) ([]StepResult, error) {
	rows, err := db.Query(
		"SELECT run_id, position, name, status, error FROM run_steps WHERE run_id = ? ORDER BY position",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list run steps: %w", err)
	}
	defer rows.Close()

	var steps []StepResult
	for rows.Next() {
		var s StepResult
		var status string
		var errText sql.NullString
		if err := rows.Scan(&s.RunID, &s.Position, &s.Name, &status, &errText); err != nil {
			return nil, fmt.Errorf("scan run step: %w", err)
		}
		s.Status = models.StepStatus(status)
		s.Error = errText.String
		steps = append(steps, s)
	}
	return steps, rows.Err()
}

// ToolOutcomes returns success and failure counts per tool name across
// all recorded runs.
func (db *DB) ToolOutcomes() (map[string][2]int, error) {
	rows, err := db.Query(
		"SELECT name, status, COUNT(*) FROM run_steps GROUP BY name, status",
	)
	if err != nil {
		return nil, fmt.Errorf("tool outcomes: %w", err)
	}
	defer rows.Close()

	out := map[string][2]int{}
	for rows.Next() {
		var name, status string
		var count int
		if err := rows.Scan(&name, &status, &count); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		c := out[name]
		switch models.StepStatus(status) {
		case models.StepStatusSuccess:
			c[0] += count
		case models.StepStatusError:
			c[1] += count
		}
		out[name] = c
	}
	return out, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanRun(row scannable) (*Run, error) {
	var run Run
	var started string
	var finished sql.NullString
	var cancelled, success int
	if err := row.Scan(&run.ID, &run.Description, &started, &finished, &run.Total, &run.Successful, &cancelled, &success); err != nil {
		return nil, err
	}
	run.StartedAt = parseTime(started)
	if finished.Valid {
		run.FinishedAt = parseTime(finished.String)
	}
	run.Cancelled = cancelled != 0
	run.Success = success != 0
	return &run, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
