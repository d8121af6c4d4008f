package model

// DisplayModel holds the calculator display text. It implements
// calculator.Display; presenters read Text() after each press and push it to
// the view. The zero value shows "0".
type DisplayModel struct {
	text string
	set  bool
}

// NewDisplayModel returns a display model showing "0".
func NewDisplayModel() *DisplayModel { return &DisplayModel{} }

// Text returns the current display text.
func (m *DisplayModel) Text() string {
	if m == nil || !m.set {
		return "0"
	}
	return m.text
}

// SetText replaces the display text.
func (m *DisplayModel) SetText(s string) {
	if m == nil {
		return
	}
	m.text = s
	m.set = true
}
