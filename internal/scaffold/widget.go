package scaffold

import "strings"

// widgetTable maps semantic field types to form widgets.
var widgetTable = map[string]WidgetKind{
	"string":     WidgetTextField,
	"citext":     WidgetTextField,
	"uuid":       WidgetTextField,
	"references": WidgetTextField,
	"text":       WidgetTextArea,
	"json":       WidgetTextArea,
	"jsonb":      WidgetTextArea,
	"hash":       WidgetTextArea,
	"integer":    WidgetNumberField,
	"bigint":     WidgetNumberField,
	"float":      WidgetNumberField,
	"decimal":    WidgetNumberField,
	"boolean":    WidgetCheckBox,
	"date":       WidgetDateSelect,
	"datetime":   WidgetDatetimeSelect,
	"timestamp":  WidgetDatetimeSelect,
	"time":       WidgetTimeSelect,
	"enum":       WidgetSelect,
	"file":       WidgetFileField,
	"files":      WidgetFileFields,
}

// MapWidget returns the widget for a semantic type. Unknown types get a text field.
func MapWidget(semanticType string) WidgetKind {
	if w, ok := widgetTable[strings.ToLower(strings.TrimSpace(semanticType))]; ok {
		return w
	}
	return WidgetTextField
}
