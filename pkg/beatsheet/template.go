// Package beatsheet generates plot structures from named beat sheet
// templates: the standard 15-beat sheet, a set of genre variants, and
// any custom templates loaded from the data directory.
package beatsheet

// TemplateBeat is one entry of a beat sheet template.
type TemplateBeat struct {
	Name        string  `json:"name" yaml:"name" validate:"required"`
	Percentage  float64 `json:"percentage" yaml:"percentage" validate:"min=0,max=100"`
	Description string  `json:"description" yaml:"description"`
}

// Template is an ordered list of beats spanning 0-100%. Several beats
// may share a percentage; chart consumers tolerate duplicate
// x-positions.
type Template struct {
	Name  string         `json:"name" yaml:"name" validate:"required"`
	Beats []TemplateBeat `json:"beats" yaml:"beats" validate:"required,min=1,dive"`
}

// DefaultTemplateName selects the standard 15-beat sheet. Unrecognized
// template names also resolve to it.
const DefaultTemplateName = "default"
