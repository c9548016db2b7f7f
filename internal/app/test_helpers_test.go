package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/sunsword/internal/adapters/filesystem"
	"github.com/example/sunsword/internal/core/effects"
	"github.com/example/sunsword/internal/ports/secondary"
	"github.com/example/sunsword/internal/scaffold"
)

// Ensure mockCommandRunner implements the interface
var _ secondary.CommandRunner = (*mockCommandRunner)(nil)

// mockCommandRunner records commands instead of running them.
type mockCommandRunner struct {
	commands  []string
	failOn    map[string]error
	available map[string]bool
}

func newMockCommandRunner() *mockCommandRunner {
	return &mockCommandRunner{
		failOn:    make(map[string]error),
		available: make(map[string]bool),
	}
}

func (m *mockCommandRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	m.commands = append(m.commands, line)
	if err, ok := m.failOn[line]; ok {
		return "", err
	}
	return "", nil
}

func (m *mockCommandRunner) LookPath(name string) (string, error) {
	if m.available[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

// Ensure mockColumnSource implements the interface
var _ secondary.ColumnSource = (*mockColumnSource)(nil)

// mockColumnSource serves fixed columns per table.
type mockColumnSource struct {
	tables map[string][]scaffold.Column
	err    error
}

func (m *mockColumnSource) Name() string { return "mock" }

func (m *mockColumnSource) Columns(ctx context.Context, table string) ([]scaffold.Column, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tables[table], nil
}

// recordingReporter keeps every reported action and message.
type recordingReporter struct {
	actions  []string
	messages []string
}

func (r *recordingReporter) Action(action, target string) {
	r.actions = append(r.actions, action+" "+target)
}

func (r *recordingReporter) Log(level, message string) {
	r.messages = append(r.messages, level+": "+message)
}

// newProject creates a project directory from path -> content pairs.
// A path ending in "/" creates an empty directory.
func newProject(t *testing.T, files map[string]string) (string, *filesystem.WorkspaceAdapter) {
	t.Helper()
	root := t.TempDir()
	for path, content := range files {
		full := filepath.Join(root, path)
		if strings.HasSuffix(path, "/") {
			if err := os.MkdirAll(full, 0755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	ws, err := filesystem.NewWorkspaceAdapter(root)
	if err != nil {
		t.Fatal(err)
	}
	return root, ws
}

func readFile(t *testing.T, root, path string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, path))
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func fileExists(root, path string) bool {
	_, err := os.Stat(filepath.Join(root, path))
	return err == nil
}

// mockEffectExecutor records effects instead of executing them.
type mockEffectExecutor struct {
	executedEffects []effects.Effect
	err             error
}

func newMockEffectExecutor() *mockEffectExecutor {
	return &mockEffectExecutor{}
}

func (m *mockEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	m.executedEffects = append(m.executedEffects, effs...)
	return m.err
}
