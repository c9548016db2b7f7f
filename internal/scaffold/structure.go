package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/sunsword/internal/config"
)

// StructureDir is where structure files live inside a project or engine.
const StructureDir = "db/structures"

// StructureFileName returns the file name for a structure identifier ("user" -> "user_structure.yaml").
func StructureFileName(structure string) string {
	return structure + "_structure.yaml"
}

// structureFile mirrors the on-disk YAML layout.
type structureFile struct {
	Model           string `yaml:"model"`
	ResourceName    string `yaml:"resource_name"`
	Actor           string `yaml:"actor"`
	ResourceOwnerID string `yaml:"resource_owner_id"`
	TableName       string `yaml:"table_name"`
	RouteScope      string `yaml:"route_scope"`
	Uploaders       []any  `yaml:"uploaders"`
	SearchAble      []any  `yaml:"search_able"`
	Entity          struct {
		SkippedFields []string `yaml:"skipped_fields"`
		CustomFields  []any    `yaml:"custom_fields"`
	} `yaml:"entity"`
	Domains     map[string]domainAction `yaml:"domains"`
	Controllers struct {
		FormFields []FieldSpec `yaml:"form_fields"`
		RouteScope string      `yaml:"route_scope"`
	} `yaml:"controllers"`
}

type domainAction struct {
	UseCase struct {
		Contract []contractField `yaml:"contract"`
	} `yaml:"use_case"`
}

// contractField accepts either a bare name or a {name, type} mapping.
type contractField string

func (c *contractField) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*c = contractField(value.Value)
		return nil
	}
	var f FieldSpec
	if err := value.Decode(&f); err != nil {
		return err
	}
	*c = contractField(f.Name)
	return nil
}

// UnmarshalYAML accepts either a bare name or a {name, type} mapping.
// A bare name leaves Type empty so it can be resolved from model columns.
func (f *FieldSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		f.Name = value.Value
		f.Type = ""
		return nil
	}
	type plain FieldSpec
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*f = FieldSpec(p)
	return nil
}

// LoadStructure reads and normalizes a structure YAML file.
func LoadStructure(path string, settings *config.Settings) (*ResourceStructure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigError{Path: path, Reason: "structure file not found", Hint: "create it under " + StructureDir}
		}
		return nil, &ConfigError{Path: path, Reason: "failed to read structure file", Err: err}
	}
	return ParseStructure(path, data, settings)
}

// ParseStructure normalizes raw structure YAML. path is only used in errors.
func ParseStructure(path string, data []byte, settings *config.Settings) (*ResourceStructure, error) {
	var raw structureFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigError{Path: path, Reason: "invalid structure yaml", Err: err}
	}

	model := strings.TrimSpace(raw.Model)
	if model == "" {
		return nil, &ConfigError{Path: path, Reason: "missing required key: model"}
	}
	resource := strings.TrimSpace(raw.ResourceName)
	if resource == "" {
		return nil, &ConfigError{Path: path, Reason: "missing required key: resource_name"}
	}

	s := &ResourceStructure{
		ModelName:       model,
		Actor:           strings.TrimSpace(raw.Actor),
		ResourceOwnerID: strings.TrimSpace(raw.ResourceOwnerID),
		TableName:       strings.TrimSpace(raw.TableName),
		CustomFields:    raw.Entity.CustomFields,
		Uploaders:       raw.Uploaders,
		SearchAble:      raw.SearchAble,
		DomainActions:   make(map[string][]string, len(Actions)),
		FormFields:      raw.Controllers.FormFields,
	}
	if settings != nil {
		s.OwnerColumn = settings.ScopeOwnerColumn
	}

	seen := make(map[string]bool)
	for _, f := range raw.Entity.SkippedFields {
		f = strings.TrimSpace(f)
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		s.SkippedFields = append(s.SkippedFields, f)
	}

	for _, action := range Actions {
		da, ok := raw.Domains["action_"+action]
		if !ok {
			continue
		}
		contract := make([]string, 0, len(da.UseCase.Contract))
		for _, c := range da.UseCase.Contract {
			contract = append(contract, string(c))
		}
		s.DomainActions[action] = contract
	}

	for i, f := range s.FormFields {
		if f.Name == "" {
			return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("controllers.form_fields[%d] has no name", i)}
		}
	}

	scope := raw.RouteScope
	if scope == "" {
		scope = raw.Controllers.RouteScope
	}
	s.WithRouteScope(scope)

	// Names follow ActiveSupport: singularize.underscore then pluralize.
	singular := Singularize(ToSnakeCase(resource))
	s.ScopePath = Pluralize(singular)
	s.ResourceName = s.ScopePath
	s.ScopeClass = ToPascalCase(s.ScopePath)
	s.SubjectClass = ToPascalCase(singular)
	s.VariableSubject = ToSnakeCase(LocalName(model))

	return s, nil
}

// WithRouteScope sets the route namespace, overriding the one in the file.
func (s *ResourceStructure) WithRouteScope(scope string) {
	scope = strings.ToLower(strings.TrimSpace(scope))
	s.RouteScope = scope
	s.RouteScopePath = scope
	s.RouteScopeClass = ""
	if scope != "" {
		s.RouteScopeClass = Camelize(scope)
	}
}

// Table returns the table used for column introspection.
func (s *ResourceStructure) Table() string {
	if s.TableName != "" {
		return s.TableName
	}
	return TableName(s.ModelName)
}

// ContractFields returns model column names minus skipped fields and the scope owner column.
func (s *ResourceStructure) ContractFields(columns []Column) []string {
	var names []string
	for _, c := range columns {
		if s.IsSkipped(c.Name) {
			continue
		}
		names = append(names, c.Name)
	}
	return names
}

// ViewFields returns the fields a form renders: the declared form_fields, or
// the non-skipped model columns when none are declared. Untyped declared
// fields take their type from the columns.
func (s *ResourceStructure) ViewFields(columns []Column) []FieldSpec {
	types := ColumnTypes(columns)
	if len(s.FormFields) == 0 {
		var fields []FieldSpec
		for _, c := range columns {
			if s.IsSkipped(c.Name) || c.Name == "id" {
				continue
			}
			fields = append(fields, FieldSpec{Name: c.Name, Type: c.Type})
		}
		return fields
	}

	fields := make([]FieldSpec, len(s.FormFields))
	for i, f := range s.FormFields {
		fields[i] = resolveField(f, types)
	}
	return fields
}

// ColumnTypes indexes columns by name.
func ColumnTypes(columns []Column) map[string]string {
	types := make(map[string]string, len(columns))
	for _, c := range columns {
		types[c.Name] = c.Type
	}
	return types
}

// UseCaseName builds the use case constant for an action,
// e.g. ("admin", "list", "test_model", "_contract") -> "AdminListTestModelContract".
func UseCaseName(actor, action, subject, suffix string) string {
	return ToPascalCase(fmt.Sprintf("%s_%s_%s%s", actor, action, subject, suffix))
}

// StructurePath joins a root and structure identifier into the structure file path.
func StructurePath(root, structure string) string {
	return filepath.Join(root, StructureDir, StructureFileName(structure))
}
