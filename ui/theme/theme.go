package theme

// Light/dark palettes for the calculator and the current display mode.
// Kept free of Tk so presenters and tests can use it headlessly; the view
// applies the resolved palette to its widgets.

// Palette defines the colours of one display mode.
type Palette struct {
	Background  string // window and display background
	Text        string // display and button text
	Functional  string // AC, +/-, %
	Numerical   string // digits, decimal point, mode key
	Operational string // operators and equals
	ModeGlyph   string // label of the display mode key
}

// Light mode colours.
const (
	LightBackground  = "#EEE"
	LightText        = "#000"
	LightFunctional  = "#999"
	LightNumerical   = "#CCC"
	LightOperational = "#f9b658"
)

// Dark mode colours.
const (
	DarkBackground  = "#000"
	DarkText        = "#FFF"
	DarkFunctional  = "#666"
	DarkNumerical   = "#222"
	DarkOperational = "#f8af47"
)

// Display mode key glyphs.
const (
	GlyphSun  = "☼"
	GlyphMoon = "🌒"
)

// PaletteFor returns the colours for the given mode. The mode key shows the
// mode a press switches to.
func PaletteFor(dark bool) Palette {
	if dark {
		return Palette{
			Background:  DarkBackground,
			Text:        DarkText,
			Functional:  DarkFunctional,
			Numerical:   DarkNumerical,
			Operational: DarkOperational,
			ModeGlyph:   GlyphSun,
		}
	}
	return Palette{
		Background:  LightBackground,
		Text:        LightText,
		Functional:  LightFunctional,
		Numerical:   LightNumerical,
		Operational: LightOperational,
		ModeGlyph:   GlyphMoon,
	}
}

// Mode tracks whether the dark palette is active. The zero value is light.
type Mode struct{ dark bool }

// NewMode returns a Mode starting dark or light.
func NewMode(dark bool) *Mode { return &Mode{dark: dark} }

// SetDark selects the mode and returns it.
func (m *Mode) SetDark(dark bool) bool {
	if m == nil {
		return false
	}
	m.dark = dark
	return m.dark
}

// ToggleDark flips the mode and returns the new value.
func (m *Mode) ToggleDark() bool {
	if m == nil {
		return false
	}
	return m.SetDark(!m.dark)
}

// IsDark reports the current mode.
func (m *Mode) IsDark() bool { return m != nil && m.dark }

// Current returns the palette of the current mode.
func (m *Mode) Current() Palette { return PaletteFor(m.IsDark()) }
