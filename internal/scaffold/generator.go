package scaffold

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	scaffoldtmpl "github.com/example/sunsword/internal/templates/scaffold"
)

// View templates rendered for every resource, in generation order.
var viewTemplates = []string{"_form", "edit", "index", "new", "show"}

// PayloadOptions carries the invocation context that is not in the structure file.
type PayloadOptions struct {
	AppRoot    string // "app" or "engines/admin/app"
	Domain     string // use case namespace, e.g. "core"
	ScopeOwner string // controller expression owning scoped records, e.g. "current_user"
}

// Payload is the template context for a scaffolded resource.
type Payload struct {
	*ResourceStructure

	AppRoot      string
	Domain       string
	ScopeOwner   string
	Fields       []FieldSpec    // form fields with resolved types
	Fragments    []FragmentSpec // rendered form fragments
	ModelFields  []string       // model columns minus skipped fields
	StrongParams string
}

// ControllerClass returns the controller constant, namespaced by route scope.
func (p *Payload) ControllerClass() string {
	if p.RouteScopeClass == "" {
		return p.ScopeClass + "Controller"
	}
	return p.RouteScopeClass + "::" + p.ScopeClass + "Controller"
}

// UseCasePrefix returns the namespace holding this resource's use cases.
func (p *Payload) UseCasePrefix() string {
	prefix := "UseCases::" + p.ScopeClass
	if p.Domain != "" {
		prefix = Camelize(p.Domain) + "::" + prefix
	}
	return prefix
}

// UseCase returns the fully qualified use case constant for an action.
func (p *Payload) UseCase(action string) string {
	return p.UseCasePrefix() + "::" + UseCaseName(p.Actor, action, p.VariableSubject, "")
}

// Singular returns the singular route name ("test_models" -> "test_model").
func (p *Payload) Singular() string {
	return Singularize(p.ScopePath)
}

// ListFields returns the columns shown on the index page.
func (p *Payload) ListFields() []string {
	if c := p.Contract(ActionList); len(c) > 0 {
		return c
	}
	return p.ModelFields
}

// ShowFields returns the columns shown on the detail page.
func (p *Payload) ShowFields() []string {
	if c := p.Contract(ActionFetchByID); len(c) > 0 {
		return c
	}
	return p.ModelFields
}

// OwnerScoped reports whether contracts are merged with the owning record id.
func (p *Payload) OwnerScoped() bool {
	return p.ResourceOwnerID != "" && p.ScopeOwner != ""
}

// ViewDir returns the view directory for the resource.
func (p *Payload) ViewDir() string {
	return filepath.Join(p.AppRoot, "views", p.RouteScopePath, p.ScopePath)
}

// ControllerPath returns the controller file path.
func (p *Payload) ControllerPath() string {
	return filepath.Join(p.AppRoot, "controllers", p.RouteScopePath, p.ScopePath+"_controller.rb")
}

// LinkPartial returns the render path of the sidebar link partial.
func (p *Payload) LinkPartial() string {
	return "components/menu/link_to_" + p.ScopePath
}

type fileTemplate struct {
	template string
	path     string
}

// Generator renders scaffold templates.
type Generator struct {
	funcs template.FuncMap
}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{
		funcs: scaffoldtmpl.TemplateFuncs(Humanize),
	}
}

// BuildPayload resolves fields, fragments and strong params for a structure.
func (g *Generator) BuildPayload(s *ResourceStructure, columns []Column, opts PayloadOptions) (*Payload, error) {
	appRoot := opts.AppRoot
	if appRoot == "" {
		appRoot = "app"
	}

	fields := s.ViewFields(columns)
	fragments, err := g.RenderForm(fields, s.VariableSubject)
	if err != nil {
		return nil, err
	}

	return &Payload{
		ResourceStructure: s,
		AppRoot:           appRoot,
		Domain:            opts.Domain,
		ScopeOwner:        opts.ScopeOwner,
		Fields:            fields,
		Fragments:         fragments,
		ModelFields:       s.ContractFields(columns),
		StrongParams:      SynthesizeParams(fields, ColumnTypes(columns)),
	}, nil
}

// RenderForm synthesizes and renders the form fragments for fields in order.
func (g *Generator) RenderForm(fields []FieldSpec, subject string) ([]FragmentSpec, error) {
	specs := SynthesizeFields(fields, subject)
	for i := range specs {
		tmplContent, err := scaffoldtmpl.GetFieldTemplate(specs[i].Layout)
		if err != nil {
			return nil, fmt.Errorf("no fragment template for %s: %w", specs[i].Widget, err)
		}
		html, err := g.render("field:"+specs[i].Layout, tmplContent, specs[i])
		if err != nil {
			return nil, fmt.Errorf("failed to render field %s: %w", specs[i].Field.Name, err)
		}
		specs[i].HTML = strings.TrimRight(html, "\n")
	}
	return specs, nil
}

// GenerateResource renders the controller, its spec, the views and the menu link.
func (g *Generator) GenerateResource(p *Payload) (*GeneratorResult, error) {
	result := &GeneratorResult{}

	files := []fileTemplate{
		{"controllers/controller.rb", p.ControllerPath()},
		{"controllers/controller_spec.rb", filepath.Join(p.AppRoot, "controllers", p.RouteScopePath, p.ScopePath+"_controller_spec.rb")},
	}
	for _, v := range viewTemplates {
		files = append(files, fileTemplate{"views/" + v + ".html.erb", filepath.Join(p.ViewDir(), v+".html.erb")})
	}
	files = append(files, fileTemplate{
		"views/components/menu/link.html.erb",
		filepath.Join(p.AppRoot, "views", "components", "menu", "_link_to_"+p.ScopePath+".html.erb"),
	})

	for _, f := range files {
		content, err := g.renderTemplate(f.template, p)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", f.template, err)
		}
		result.Files = append(result.Files, GeneratedFile{
			Path:     f.path,
			Template: f.template,
			Content:  content,
		})
	}

	result.NextSteps = []string{
		fmt.Sprintf("Implement the use cases under %s", p.UseCasePrefix()),
		fmt.Sprintf("Review %s and adjust the permitted params", p.ControllerPath()),
	}

	return result, nil
}

// renderTemplate renders a named scaffold template.
func (g *Generator) renderTemplate(name string, data any) (string, error) {
	tmplContent, err := scaffoldtmpl.GetTemplate(name)
	if err != nil {
		return "", err
	}
	return g.render(name, tmplContent, data)
}

func (g *Generator) render(name, content string, data any) (string, error) {
	tmpl, err := template.New(name).Funcs(g.funcs).Parse(content)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
