package app

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/example/sunsword/internal/config"
	"github.com/example/sunsword/internal/ports/primary"
)

func newTestInitService(t *testing.T, files map[string]string) (string, *InitServiceImpl) {
	t.Helper()
	root, ws := newProject(t, files)
	return root, NewInitService(ws, NewEffectExecutor(ws, newMockCommandRunner(), nil))
}

func TestInit_WritesInitializerAndSettings(t *testing.T) {
	root, service := newTestInitService(t, nil)

	resp, err := service.Init(context.Background(), primary.InitRequest{
		ScopeOwnerColumn: "user_id",
		ScopeOwner:       "current_user",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(resp.Written) != 2 || len(resp.Skipped) != 0 {
		t.Errorf("Written = %v, Skipped = %v", resp.Written, resp.Skipped)
	}

	initializer := readFile(t, root, config.InitializerPath)
	if !strings.Contains(initializer, "config.scope_owner_column = 'user_id'") {
		t.Errorf("initializer = %q", initializer)
	}

	settings, err := config.Load(root)
	if err != nil {
		t.Fatalf("settings should load: %v", err)
	}
	if settings.ScopeOwner != "current_user" || settings.PackageManager != config.PackageManagerBun {
		t.Errorf("settings = %+v", settings)
	}
}

func TestInit_SettingsGoThroughWorkspace(t *testing.T) {
	root, ws := newProject(t, nil)
	reporter := &recordingReporter{}
	service := NewInitService(ws, NewEffectExecutor(ws, newMockCommandRunner(), reporter))

	if _, err := service.Init(context.Background(), primary.InitRequest{ScopeOwnerColumn: "account_id"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !slices.Contains(reporter.actions, "create "+config.SettingsPath) {
		t.Errorf("actions = %v, want settings write reported", reporter.actions)
	}

	entries, err := os.ReadDir(filepath.Join(root, filepath.Dir(config.SettingsPath)))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			t.Errorf("temporary file left behind: %s", e.Name())
		}
	}

	reporter.actions = nil
	if _, err := service.Init(context.Background(), primary.InitRequest{ScopeOwnerColumn: "tenant_id"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !slices.Contains(reporter.actions, "skip "+config.SettingsPath) {
		t.Errorf("actions = %v, want settings skip reported", reporter.actions)
	}
	settings, err := config.Load(root)
	if err != nil {
		t.Fatalf("settings should load: %v", err)
	}
	if settings.ScopeOwnerColumn != "account_id" {
		t.Errorf("ScopeOwnerColumn = %q, existing settings should be kept", settings.ScopeOwnerColumn)
	}
}

func TestInit_KeepsExistingUnlessForced(t *testing.T) {
	files := map[string]string{config.InitializerPath: "# custom\n"}
	root, service := newTestInitService(t, files)

	resp, err := service.Init(context.Background(), primary.InitRequest{ScopeOwner: "current_user"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Skipped) != 1 || resp.Skipped[0] != config.InitializerPath {
		t.Errorf("Skipped = %v", resp.Skipped)
	}
	if got := readFile(t, root, config.InitializerPath); got != "# custom\n" {
		t.Errorf("initializer overwritten: %q", got)
	}

	if _, err := service.Init(context.Background(), primary.InitRequest{ScopeOwner: "current_user", Force: true}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := readFile(t, root, config.InitializerPath); got == "# custom\n" {
		t.Error("force should overwrite the initializer")
	}
}

func TestInit_RejectsUnknownPackageManager(t *testing.T) {
	root, service := newTestInitService(t, nil)

	_, err := service.Init(context.Background(), primary.InitRequest{PackageManager: "npm"})
	if err == nil {
		t.Fatal("expected error for npm")
	}
	if fileExists(root, config.SettingsPath) {
		t.Error("nothing should be written")
	}
}
