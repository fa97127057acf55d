package validate

import (
	"context"
	"errors"
	"testing"
)

type stubRunner struct {
	onPath    map[string]bool
	failRun   bool
	failShell bool
	ran       []string
}

func (r *stubRunner) Run(ctx context.Context, workDir, name string, args ...string) ([]byte, error) {
	r.ran = append(r.ran, name)
	if r.failRun {
		return nil, errors.New("exit status 1")
	}
	return []byte("v1.0.0"), nil
}

func (r *stubRunner) RunShell(ctx context.Context, workDir, command string) ([]byte, error) {
	r.ran = append(r.ran, command)
	if r.failShell {
		return nil, errors.New("exit status 1")
	}
	return nil, nil
}

func (r *stubRunner) LookPath(name string) bool { return r.onPath[name] }

func TestValidateToolOnPath(t *testing.T) {
	v := New(&stubRunner{onPath: map[string]bool{"git": true}})
	if !v.ValidateTool(context.Background(), "git") {
		t.Error("expected git to validate")
	}
}

func TestValidateToolMissing(t *testing.T) {
	runner := &stubRunner{onPath: map[string]bool{}}
	v := New(runner)
	if v.ValidateTool(context.Background(), "git") {
		t.Error("expected missing tool to fail validation")
	}
	if len(runner.ran) != 0 {
		t.Errorf("expected no commands for missing tool, ran %v", runner.ran)
	}
}

func TestValidateToolNormalizesName(t *testing.T) {
	runner := &stubRunner{onPath: map[string]bool{"docker": true}}
	v := New(runner)
	if !v.ValidateTool(context.Background(), "  Docker Engine ") {
		t.Error("expected normalized name to validate")
	}
}

func TestValidateToolVersionFailureStillPasses(t *testing.T) {
	v := New(&stubRunner{onPath: map[string]bool{"make": true}, failRun: true})
	if !v.ValidateTool(context.Background(), "make") {
		t.Error("expected PATH presence to be sufficient")
	}
}

func TestValidateToolEmptyName(t *testing.T) {
	v := New(&stubRunner{})
	if v.ValidateTool(context.Background(), "   ") {
		t.Error("expected empty name to fail")
	}
}

func TestValidateCommand(t *testing.T) {
	v := New(&stubRunner{})
	if !v.ValidateCommand(context.Background(), "psql --version") {
		t.Error("expected clean exit to validate")
	}
	if v.ValidateCommand(context.Background(), "") {
		t.Error("expected empty command to fail")
	}

	v = New(&stubRunner{failShell: true})
	if v.ValidateCommand(context.Background(), "psql --version") {
		t.Error("expected failing command to fail validation")
	}
}
