package frontend

import (
	"path"
	"regexp"

	"github.com/example/sunsword/internal/core/effects"
	"github.com/example/sunsword/internal/inject"
	gen "github.com/example/sunsword/internal/scaffold"
	"github.com/example/sunsword/internal/templates"
)

// Project paths touched by the setup.
const (
	AppDir            = "app"
	AssetsDir         = "app/assets"
	ApplicationJSPath = "app/javascript/application.js"
	ApplicationRBPath = "config/application.rb"
	GemfilePath       = "Gemfile"
	RoutesPath        = "config/routes.rb"
	SourceCodeDir     = "app/frontend"
	WatchScript       = "bin/watch"

	// GemfileMarker identifies the block appended to the Gemfile.
	GemfileMarker = "# --- SunSword Package frontend"

	// RoutesMarker identifies the test routes in config/routes.rb.
	RoutesMarker = `get "tests/stimulus"`

	// DefaultAppName is used when config/application.rb has no module.
	DefaultAppName = "app"
)

// Step names, in execution order.
const (
	StepRemoveAssets        = "remove_assets_folder"
	StepCopyAssets          = "copy_assets_from_template"
	StepAddToGemfile        = "add_to_gemfile"
	StepInstallVite         = "install_vite"
	StepConfigureVite       = "configure_vite"
	StepModifyApplicationJS = "modify_application_js"
	StepGenerateFrontend    = "generate_default_frontend"
	StepGenerateTests       = "generate_controllers_tests"
	StepGenerateComponents  = "generate_components"
	StepModifyLayoutForVite = "modify_layout_for_vite"
)

// Root files written by configure_vite, in order. Template names map to
// project paths; env.development becomes a dotfile.
var viteConfigFiles = []struct{ template, path string }{
	{"vite.config.ts", "vite.config.ts"},
	{"Procfile.dev", "Procfile.dev"},
	{"bin/watch", WatchScript},
	{"config/vite.json", "config/vite.json"},
	{"env.development", ".env.development"},
}

// Packages added after the install, per package manager.
var packageGroups = [][]string{
	{"-D", "vite", "vite-plugin-full-reload", "vite-plugin-ruby", "vite-plugin-stimulus-hmr"},
	{"path", "stimulus-vite-helpers", "@hotwired/stimulus", "@hotwired/turbo-rails",
		"@tailwindcss/aspect-ratio", "@tailwindcss/forms", "@tailwindcss/line-clamp",
		"@tailwindcss/typography", "@tailwindcss/vite", "tailwindcss", "vite-plugin-rails", "autoprefixer"},
	{"-D", "eslint", "prettier", "eslint-plugin-prettier", "eslint-config-prettier", "eslint-plugin-tailwindcss"},
}

// testsActions are the actions of the generated tests controller.
var testsActions = []string{"stimulus", "turbo_drive", "turbo_frame", "frame_content", "update_content"}

// PlanInput contains everything the setup needs, rendered and probed up front.
// All values must be gathered by the caller - no I/O in the planner.
type PlanInput struct {
	AssetsExist         bool
	ApplicationJSExists bool
	PackageManager      string // "bun" or "yarn"
	RoutesHeader        string

	Manifest     string
	GemfileBlock string
	RoutesBlock  string
	Root         []templates.File // package.json and vite config files
	Frontend     []templates.File // relative to app/
	Tests        []templates.File // relative to app/
	Components   []templates.File // relative to app/
	Layouts      []templates.File // relative to app/
}

// Step is one named stage of the setup.
type Step struct {
	Name    string
	Effects []effects.Effect
}

// Plan represents the ordered setup steps.
type Plan struct {
	Steps []Step
}

// Effects returns all effects as a flat slice for execution.
func (p Plan) Effects() []effects.Effect {
	var result []effects.Effect
	for _, s := range p.Steps {
		result = append(result, s.Effects...)
	}
	return effects.Flatten(result)
}

// StepNames returns the step names in order.
func (p Plan) StepNames() []string {
	names := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		names[i] = s.Name
	}
	return names
}

// GenerateSetupPlan creates the plan for installing Vite, Stimulus and Turbo
// into the main app.
// This is a pure function - all input data must be pre-fetched.
func GenerateSetupPlan(input PlanInput) Plan {
	return Plan{Steps: []Step{
		removeAssets(input),
		{StepCopyAssets, []effects.Effect{
			effects.Write(path.Join(AssetsDir, "config/manifest.js"), input.Manifest),
			effects.Info("File 'app/assets' has been copied from template."),
		}},
		addToGemfile(input),
		installVite(input),
		configureVite(input),
		modifyApplicationJS(input),
		{StepGenerateFrontend, append(writeAll(input.Frontend),
			effects.Info("Generated default frontend files"))},
		generateTests(input),
		{StepGenerateComponents, append(writeAll(input.Components),
			effects.Info("Generated default components"))},
		{StepModifyLayoutForVite, append(writeAll(input.Layouts),
			effects.Info("Updated application layout for Vite integration"))},
	}}
}

func removeAssets(input PlanInput) Step {
	if !input.AssetsExist {
		return Step{StepRemoveAssets, []effects.Effect{
			effects.Warn("Folder 'app/assets' does not exist."),
		}}
	}
	return Step{StepRemoveAssets, []effects.Effect{
		effects.FileEffect{Operation: effects.FileRemoveDir, Path: AssetsDir},
		effects.Info("Folder 'app/assets' has been removed."),
	}}
}

func addToGemfile(input PlanInput) Step {
	return Step{StepAddToGemfile, []effects.Effect{
		effects.InjectEffect{Target: inject.Target{
			Path:  GemfilePath,
			Edits: []inject.Edit{{Position: inject.Append, Text: input.GemfileBlock, Marker: GemfileMarker}},
			Hint:  "add turbo-rails, stimulus-rails and vite_rails manually",
		}},
		effects.CommandEffect{Name: "bundle", Args: []string{"install"}},
		effects.Info("Vite Rails gem added and bundle installed"),
	}}
}

func installVite(input PlanInput) Step {
	pm := input.PackageManager
	if pm == "" {
		pm = "bun"
	}

	effs := []effects.Effect{}
	if f, ok := find(input.Root, "package.json"); ok {
		effs = append(effs, effects.Write("package.json", f.Content))
	}
	effs = append(effs, effects.CommandEffect{Name: pm, Args: []string{"install"}})
	for _, group := range packageGroups {
		effs = append(effs, effects.CommandEffect{Name: pm, Args: append([]string{"add"}, group...)})
	}
	effs = append(effs, effects.Info("Vite installed successfully with "+gen.ToPascalCase(pm)))

	return Step{StepInstallVite, effs}
}

func configureVite(input PlanInput) Step {
	effs := []effects.Effect{effects.Info("Configuring Vite...")}
	for _, c := range viteConfigFiles {
		if f, ok := find(input.Root, c.template); ok {
			effs = append(effs, effects.Write(c.path, f.Content))
		}
	}
	effs = append(effs,
		effects.FileEffect{Operation: effects.FileChmod, Path: WatchScript, Mode: 0755},
		effects.Info("Vite configuration completed"),
	)
	return Step{StepConfigureVite, effs}
}

func modifyApplicationJS(input PlanInput) Step {
	if !input.ApplicationJSExists {
		return Step{StepModifyApplicationJS, []effects.Effect{effects.NoEffect{}}}
	}
	return Step{StepModifyApplicationJS, []effects.Effect{
		effects.Info("Updated application.js for Vite"),
	}}
}

func generateTests(input PlanInput) Step {
	effs := []effects.Effect{
		effects.CommandEffect{Name: "rails", Args: append([]string{"g", "controller", "tests"}, testsActions...)},
	}
	effs = append(effs, writeAll(input.Tests)...)
	effs = append(effs,
		effects.InjectEffect{Target: inject.Target{
			Path: RoutesPath,
			Edits: []inject.Edit{{
				Position: inject.After,
				Anchor:   input.RoutesHeader,
				Text:     input.RoutesBlock,
				Marker:   RoutesMarker,
			}},
			Hint: "add the tests routes manually",
		}},
		effects.Info("Generate tests controller for frontend feature testing"),
	)
	return Step{StepGenerateTests, effs}
}

// writeAll writes files below app/.
func writeAll(files []templates.File) []effects.Effect {
	effs := make([]effects.Effect, 0, len(files))
	for _, f := range files {
		effs = append(effs, effects.Write(path.Join(AppDir, f.Path), f.Content))
	}
	return effs
}

func find(files []templates.File, name string) (templates.File, bool) {
	for _, f := range files {
		if f.Path == name {
			return f, true
		}
	}
	return templates.File{}, false
}

var appModule = regexp.MustCompile(`(?m)^\s*module\s+([A-Z][A-Za-z0-9_]*)\s*$`)

// AppName returns the underscored application module declared in
// config/application.rb ("TestApp" -> "test_app").
func AppName(applicationRB string) string {
	m := appModule.FindStringSubmatch(applicationRB)
	if m == nil {
		return DefaultAppName
	}
	return gen.ToSnakeCase(m[1])
}
