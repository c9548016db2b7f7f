package resource

import (
	"testing"

	"github.com/example/sunsword/internal/core/effects"
	"github.com/example/sunsword/internal/inject"
	gen "github.com/example/sunsword/internal/scaffold"
)

func TestGenerateScaffoldPlan(t *testing.T) {
	input := PlanInput{
		ScopePath: "test_models",
		ViewDir:   "app/views/test_models",
		Files: []gen.GeneratedFile{
			{Path: "app/controllers/test_models_controller.rb", Content: "class TestModelsController; end\n"},
			{Path: "app/views/test_models/index.html.erb", Content: "<h1></h1>\n"},
		},
		RoutesFile:  "config/routes.rb",
		Route:       inject.RouteRequest{Header: "Rails.application.routes.draw do\n", ScopePath: "test_models"},
		SidebarFile: "app/views/components/layouts/_sidebar.html.erb",
		Warnings:    []string{"no columns found for test_models"},
	}

	plan := GenerateScaffoldPlan(input)

	if len(plan.Messages) != 1 || plan.Messages[0].Level != effects.LevelWarn {
		t.Fatalf("Messages = %+v, want one warning", plan.Messages)
	}

	// mkdir for the view dir, then one write per file
	if len(plan.FileOps) != 3 {
		t.Fatalf("FileOps count = %d, want 3", len(plan.FileOps))
	}
	if plan.FileOps[0].Operation != effects.FileMkdir || plan.FileOps[0].Path != "app/views/test_models" {
		t.Errorf("first op = %+v, want mkdir of view dir", plan.FileOps[0])
	}
	if plan.FileOps[1].Operation != effects.FileWrite || string(plan.FileOps[1].Content) != "class TestModelsController; end\n" {
		t.Errorf("second op = %+v, want controller write", plan.FileOps[1])
	}

	// route before sidebar
	if len(plan.InjectOps) != 2 {
		t.Fatalf("InjectOps count = %d, want 2", len(plan.InjectOps))
	}
	if plan.InjectOps[0].Target.Path != "config/routes.rb" {
		t.Errorf("first injection = %q, want routes", plan.InjectOps[0].Target.Path)
	}
	if plan.InjectOps[1].Target.Missing != inject.MissingSilent {
		t.Errorf("sidebar injection should skip a missing file silently")
	}

	if got := len(plan.Effects()); got != 6 {
		t.Errorf("Effects count = %d, want 6", got)
	}

	wantPaths := []string{
		"app/controllers/test_models_controller.rb",
		"app/views/test_models/index.html.erb",
		"config/routes.rb",
		"app/views/components/layouts/_sidebar.html.erb",
	}
	paths := plan.Paths()
	if len(paths) != len(wantPaths) {
		t.Fatalf("Paths = %v, want %v", paths, wantPaths)
	}
	for i := range wantPaths {
		if paths[i] != wantPaths[i] {
			t.Errorf("Paths[%d] = %q, want %q", i, paths[i], wantPaths[i])
		}
	}
}

func TestGenerateScaffoldPlan_NoInjections(t *testing.T) {
	plan := GenerateScaffoldPlan(PlanInput{ScopePath: "tags", ViewDir: "app/views/tags"})

	if len(plan.InjectOps) != 0 {
		t.Errorf("InjectOps count = %d, want 0", len(plan.InjectOps))
	}
	if len(plan.Messages) != 0 {
		t.Errorf("Messages count = %d, want 0", len(plan.Messages))
	}
}
