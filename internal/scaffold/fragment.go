package scaffold

import "fmt"

// textAreaRows is the fixed height of generated text areas.
const textAreaRows = 3

// SynthesizeField decides the structure of the form fragment for one field.
// The HTML is filled in by Generator.RenderForm.
func SynthesizeField(field FieldSpec, subject string) FragmentSpec {
	widget := MapWidget(field.Type)
	inputID := fmt.Sprintf("%s_%s", subject, field.Name)

	spec := FragmentSpec{
		Field:      field,
		Widget:     widget,
		InputID:    inputID,
		LabelForID: inputID,
		Layout:     LayoutStacked,
	}

	switch widget {
	case WidgetTextArea:
		spec.Rows = textAreaRows
	case WidgetCheckBox:
		spec.Layout = LayoutInline
	case WidgetDateSelect, WidgetDatetimeSelect:
		// multi-part selects render year first
		spec.LabelForID = inputID + "_1i"
		spec.DiscardSecond = true
		spec.IDPrefix = inputID
	case WidgetTimeSelect:
		// time selects render hour first
		spec.LabelForID = inputID + "_4i"
		spec.DiscardSecond = true
		spec.IDPrefix = inputID
	case WidgetFileField:
		spec.Layout = LayoutUpload
	case WidgetFileFields:
		spec.Layout = LayoutUpload
		spec.Multiple = true
	}

	return spec
}

// SynthesizeFields synthesizes fragments for fields in declared order.
func SynthesizeFields(fields []FieldSpec, subject string) []FragmentSpec {
	specs := make([]FragmentSpec, 0, len(fields))
	for _, f := range fields {
		specs = append(specs, SynthesizeField(f, subject))
	}
	return specs
}
