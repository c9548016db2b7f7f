package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/sunsword/internal/core/effects"
	"github.com/example/sunsword/internal/inject"
)

func newTestExecutor(t *testing.T, files map[string]string) (string, *DefaultEffectExecutor, *mockCommandRunner, *recordingReporter) {
	t.Helper()
	root, ws := newProject(t, files)
	runner := newMockCommandRunner()
	reporter := &recordingReporter{}
	return root, NewEffectExecutor(ws, runner, reporter), runner, reporter
}

// ============================================================================
// File effects
// ============================================================================

func TestExecute_WriteCreatesAndReports(t *testing.T) {
	root, executor, _, reporter := newTestExecutor(t, nil)

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.Write("app/views/users/index.html.erb", "<h1>Users</h1>\n"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := readFile(t, root, "app/views/users/index.html.erb"); got != "<h1>Users</h1>\n" {
		t.Errorf("content = %q", got)
	}
	if len(reporter.actions) != 1 || reporter.actions[0] != "create app/views/users/index.html.erb" {
		t.Errorf("actions = %v", reporter.actions)
	}
}

func TestExecute_WriteIdenticalAndUpdate(t *testing.T) {
	root, executor, _, reporter := newTestExecutor(t, map[string]string{
		"same.txt":    "a\n",
		"changed.txt": "old\n",
	})

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.Write("same.txt", "a\n"),
		effects.Write("changed.txt", "new\n"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"identical same.txt", "update changed.txt"}
	if len(reporter.actions) != 2 || reporter.actions[0] != want[0] || reporter.actions[1] != want[1] {
		t.Errorf("actions = %v, want %v", reporter.actions, want)
	}
	if got := readFile(t, root, "changed.txt"); got != "new\n" {
		t.Errorf("changed.txt = %q", got)
	}
}

func TestExecute_SkipExisting(t *testing.T) {
	root, executor, _, reporter := newTestExecutor(t, map[string]string{
		"config/sun_sword.yml": "scope_owner: current_user\n",
	})

	w := effects.Write("config/sun_sword.yml", "scope_owner: ''\n")
	w.SkipExisting = true
	if err := executor.Execute(context.Background(), []effects.Effect{w}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := readFile(t, root, "config/sun_sword.yml"); got != "scope_owner: current_user\n" {
		t.Errorf("existing file was overwritten: %q", got)
	}
	if reporter.actions[0] != "skip config/sun_sword.yml" {
		t.Errorf("actions = %v", reporter.actions)
	}
}

func TestExecute_RemoveDirAndChmod(t *testing.T) {
	root, executor, _, _ := newTestExecutor(t, map[string]string{
		"app/assets/config/manifest.js": "//\n",
		"bin/watch":                     "#!/bin/sh\n",
	})

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.FileEffect{Operation: effects.FileRemoveDir, Path: "app/assets"},
		effects.FileEffect{Operation: effects.FileChmod, Path: "bin/watch", Mode: 0755},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if fileExists(root, "app/assets") {
		t.Error("app/assets should be removed")
	}
	info, err := os.Stat(filepath.Join(root, "bin/watch"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("mode = %o, want 755", info.Mode().Perm())
	}
}

func TestExecute_UnknownFileOperation(t *testing.T) {
	_, executor, _, _ := newTestExecutor(t, nil)

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.FileEffect{Operation: "truncate", Path: "x"},
	})
	if err == nil {
		t.Fatal("expected error for unknown operation")
	}
}

// ============================================================================
// Inject effects
// ============================================================================

func TestExecute_InjectReportsStatus(t *testing.T) {
	root, executor, _, reporter := newTestExecutor(t, map[string]string{
		"config/routes.rb": "Rails.application.routes.draw do\nend\n",
	})
	eff := effects.InjectEffect{Target: inject.RouteTarget("config/routes.rb", inject.RouteRequest{
		Header:    "Rails.application.routes.draw do\n",
		ScopePath: "users",
	})}

	ctx := context.Background()
	if err := executor.Execute(ctx, []effects.Effect{eff}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := executor.Execute(ctx, []effects.Effect{eff}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := "Rails.application.routes.draw do\n  resources :users\nend\n"
	if got := readFile(t, root, "config/routes.rb"); got != want {
		t.Errorf("routes = %q, want %q", got, want)
	}
	if len(reporter.actions) != 2 || reporter.actions[0] != "inject config/routes.rb" || reporter.actions[1] != "identical config/routes.rb" {
		t.Errorf("actions = %v", reporter.actions)
	}
}

func TestExecute_InjectMissingFileWarns(t *testing.T) {
	_, executor, _, reporter := newTestExecutor(t, nil)

	eff := effects.InjectEffect{Target: inject.RouteTarget("config/routes.rb", inject.RouteRequest{
		Header:    "Rails.application.routes.draw do\n",
		ScopePath: "users",
	})}
	if err := executor.Execute(context.Background(), []effects.Effect{eff}); err != nil {
		t.Fatalf("a missing routes file should not fail, got %v", err)
	}

	if len(reporter.messages) != 1 {
		t.Fatalf("messages = %v, want one warning", reporter.messages)
	}
	if len(reporter.actions) != 0 {
		t.Errorf("actions = %v, want none", reporter.actions)
	}
}

// ============================================================================
// Command and log effects
// ============================================================================

func TestExecute_CommandFailureWarnsAndContinues(t *testing.T) {
	root, executor, runner, reporter := newTestExecutor(t, nil)
	runner.failOn["bun install"] = errors.New("bun: not found")

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.CommandEffect{Name: "bun", Args: []string{"install"}},
		effects.Write("package.json", "{}\n"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(runner.commands) != 1 || runner.commands[0] != "bun install" {
		t.Errorf("commands = %v", runner.commands)
	}
	if len(reporter.messages) != 1 || reporter.messages[0] != "warn: bun: not found" {
		t.Errorf("messages = %v", reporter.messages)
	}
	if !fileExists(root, "package.json") {
		t.Error("effects after a failed command should still run")
	}
}

func TestExecute_CompositeAndLog(t *testing.T) {
	_, executor, _, reporter := newTestExecutor(t, nil)

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.CompositeEffect{Effects: []effects.Effect{
			effects.Info("Configuring Vite..."),
			effects.NoEffect{},
		}},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(reporter.messages) != 1 || reporter.messages[0] != "info: Configuring Vite..." {
		t.Errorf("messages = %v", reporter.messages)
	}
}
