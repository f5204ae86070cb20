package models

// Direction is a text direction applied to rendered output.
type Direction string

const (
	DirectionAuto Direction = "auto"
	DirectionLTR  Direction = "ltr"
	DirectionRTL  Direction = "rtl"
)

// ParseDirection maps a stored string onto a Direction, falling back to
// DirectionAuto for unknown or empty values. Preference values come out of
// durable storage as strings and are always parsed defensively.
func ParseDirection(s string) Direction {
	switch Direction(s) {
	case DirectionLTR:
		return DirectionLTR
	case DirectionRTL:
		return DirectionRTL
	default:
		return DirectionAuto
	}
}

// Preferences holds the UI-facing flags the core persists on behalf of the
// (out-of-scope) presentation layer. All values are stored as strings; absent
// or unparseable values yield the defaults from DefaultPreferences.
type Preferences struct {
	// AutoRender re-renders the preview on every edit when true.
	AutoRender bool `json:"auto_render"`

	// MathRender enables client-side math rendering of $...$ spans.
	MathRender bool `json:"math_render"`

	// FullHeight stretches the editor panes to the full viewport height.
	FullHeight bool `json:"full_height"`

	// InputVisible controls visibility of the markdown input panel.
	InputVisible bool `json:"input_visible"`

	// Theme is the active UI theme name.
	Theme string `json:"theme"`

	// General is the direction applied to regular rendered text.
	General Direction `json:"direction_general"`

	// InlineCode is the direction applied to inline code spans.
	InlineCode Direction `json:"direction_inline_code"`

	// CodeBlock is the direction applied to fenced code blocks.
	CodeBlock Direction `json:"direction_code_block"`
}

// DefaultPreferences returns the documented defaults used whenever a stored
// preference is absent or cannot be parsed.
func DefaultPreferences() Preferences {
	return Preferences{
		AutoRender:   true,
		MathRender:   false,
		FullHeight:   false,
		InputVisible: true,
		Theme:        "light",
		General:      DirectionAuto,
		InlineCode:   DirectionAuto,
		CodeBlock:    DirectionAuto,
	}
}
