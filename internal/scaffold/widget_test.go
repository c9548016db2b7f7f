package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapWidget(t *testing.T) {
	tests := []struct {
		semanticType string
		want         WidgetKind
	}{
		{"string", WidgetTextField},
		{"text", WidgetTextArea},
		{"integer", WidgetNumberField},
		{"float", WidgetNumberField},
		{"decimal", WidgetNumberField},
		{"boolean", WidgetCheckBox},
		{"date", WidgetDateSelect},
		{"datetime", WidgetDatetimeSelect},
		{"timestamp", WidgetDatetimeSelect},
		{"time", WidgetTimeSelect},
		{"enum", WidgetSelect},
		{"file", WidgetFileField},
		{"files", WidgetFileFields},
		{"json", WidgetTextArea},
		{"jsonb", WidgetTextArea},
		{"hash", WidgetTextArea},
		{"Boolean", WidgetCheckBox},
	}

	for _, tt := range tests {
		t.Run(tt.semanticType, func(t *testing.T) {
			assert.Equal(t, tt.want, MapWidget(tt.semanticType))
		})
	}
}

func TestMapWidget_UnknownFallsBackToTextField(t *testing.T) {
	for _, typ := range []string{"", "array", "geometry", "money", "inet"} {
		assert.Equal(t, WidgetTextField, MapWidget(typ), "type %q", typ)
	}
}

func TestMapWidget_Stable(t *testing.T) {
	for typ := range widgetTable {
		first := MapWidget(typ)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, MapWidget(typ))
		}
	}
}
