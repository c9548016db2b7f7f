// Package scaffold provides the structure loader and code synthesis for CRUD scaffolding.
package scaffold

// Domain actions declared under `domains.action_<name>` in a structure file.
const (
	ActionList      = "list"
	ActionFetchByID = "fetch_by_id"
	ActionCreate    = "create"
	ActionUpdate    = "update"
	ActionDestroy   = "destroy"
)

// Actions lists the domain actions in declaration order.
var Actions = []string{ActionList, ActionFetchByID, ActionCreate, ActionUpdate, ActionDestroy}

// ResourceStructure is the normalized form of a structure YAML file.
type ResourceStructure struct {
	ModelName       string              // "Models::TestModel"
	ResourceName    string              // lower-snake plural: "test_models"
	Actor           string              // "admin"
	ResourceOwnerID string              // optional owner column: "user_id"
	TableName       string              // optional introspection table override
	SkippedFields   []string            // columns excluded from contracts
	CustomFields    []any               // reserved, loaded but not consumed
	Uploaders       []any               // passthrough
	SearchAble      []any               // passthrough
	OwnerColumn     string              // scope owner column from settings
	DomainActions   map[string][]string // action -> contract
	FormFields      []FieldSpec         // explicit form fields, declared order
	RouteScope      string              // optional namespace: "admin"

	VariableSubject string // singular snake of model local name: "test_model"
	ScopePath       string // plural snake of resource: "test_models"
	ScopeClass      string // "TestModels"
	SubjectClass    string // "TestModel"
	RouteScopePath  string // "admin"
	RouteScopeClass string // "Admin"
}

// Contract returns the contract declared for a domain action.
func (s *ResourceStructure) Contract(action string) []string {
	return s.DomainActions[action]
}

// IsSkipped reports whether a column is excluded from contracts.
func (s *ResourceStructure) IsSkipped(name string) bool {
	if s.OwnerColumn != "" && name == s.OwnerColumn {
		return true
	}
	for _, f := range s.SkippedFields {
		if f == name {
			return true
		}
	}
	return false
}

// FieldSpec is a named field with its semantic type.
type FieldSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Column is a model column as reported by a column source.
type Column struct {
	Name string
	Type string
}

// WidgetKind is the UI control chosen for a field.
type WidgetKind string

const (
	WidgetTextField      WidgetKind = "text_field"
	WidgetTextArea       WidgetKind = "text_area"
	WidgetNumberField    WidgetKind = "number_field"
	WidgetCheckBox       WidgetKind = "check_box"
	WidgetDateSelect     WidgetKind = "date_select"
	WidgetDatetimeSelect WidgetKind = "datetime_select"
	WidgetTimeSelect     WidgetKind = "time_select"
	WidgetSelect         WidgetKind = "select"
	WidgetFileField      WidgetKind = "file_field"
	WidgetFileFields     WidgetKind = "file_fields"
)

// Fragment layouts.
const (
	LayoutStacked = "stacked" // label above input
	LayoutInline  = "inline"  // input and label side by side
	LayoutUpload  = "upload"  // drop zone
)

// FragmentSpec describes the form fragment emitted for one field.
type FragmentSpec struct {
	Field         FieldSpec
	Widget        WidgetKind
	InputID       string
	LabelForID    string
	Layout        string
	Rows          int    // text_area only
	DiscardSecond bool   // date/time selects
	IDPrefix      string // date/time selects
	Multiple      bool   // file_fields
	HTML          string // rendered fragment
}

// GeneratedFile represents a file to be created.
type GeneratedFile struct {
	Path     string // path relative to project root
	Template string // template the content was rendered from
	Content  string
}

// GeneratorResult contains the result of a scaffold render.
type GeneratorResult struct {
	Files     []GeneratedFile
	NextSteps []string
}
