package model

import (
	"github.com/soocke/tk-calc-go/domain/calculator"
	"github.com/soocke/tk-calc-go/ui/theme"
)

// KeyGroup selects the colour family a key is drawn with.
type KeyGroup int

const (
	GroupFunctional KeyGroup = iota
	GroupNumerical
	GroupOperational
)

// KeyAction says what a key does. ActionEvent keys forward Event to the
// engine; ActionDisplayMode flips light/dark.
type KeyAction int

const (
	ActionEvent KeyAction = iota
	ActionDisplayMode
)

// Key describes one button of the keypad grid. Row 0 is the display, so
// keys start at row 1.
type Key struct {
	Label  string
	Group  KeyGroup
	Action KeyAction
	Event  calculator.Event
	Row    int
	Column int
}

const (
	// KeypadColumns is the width of the button grid.
	KeypadColumns = 4
	// KeypadRows counts the button rows below the display.
	KeypadRows = 5

	LabelClear   = "AC"
	LabelSign    = "+/-"
	LabelPercent = "%"
	LabelDecimal = "."
	LabelEquals  = "〓"
)

// Keypad returns the button layout: functions across the top row, the
// operator column on the right and the number pad with the display-mode key
// and the decimal point bottom-left.
func Keypad() []Key {
	keys := []Key{
		{Label: LabelClear, Group: GroupFunctional, Event: calculator.ClearEvent(), Row: 1, Column: 0},
		{Label: LabelSign, Group: GroupFunctional, Event: calculator.SignEvent(), Row: 1, Column: 1},
		{Label: LabelPercent, Group: GroupFunctional, Event: calculator.PercentEvent(), Row: 1, Column: 2},
	}
	ops := []calculator.Operator{calculator.OpDivide, calculator.OpMultiply, calculator.OpSubtract, calculator.OpAdd}
	for i, op := range ops {
		keys = append(keys, Key{Label: op.Symbol(), Group: GroupOperational, Event: calculator.OperatorEvent(op), Row: i + 1, Column: 3})
	}
	keys = append(keys, Key{Label: LabelEquals, Group: GroupOperational, Event: calculator.EqualsEvent(), Row: 5, Column: 3})

	// bottom row: mode toggle, 0, decimal point
	keys = append(keys,
		Key{Label: theme.GlyphSun, Group: GroupNumerical, Action: ActionDisplayMode, Row: 5, Column: 0},
		Key{Label: "0", Group: GroupNumerical, Event: calculator.DigitEvent(0), Row: 5, Column: 1},
		Key{Label: LabelDecimal, Group: GroupNumerical, Event: calculator.DecimalEvent(), Row: 5, Column: 2},
	)
	for d := 1; d <= 9; d++ {
		keys = append(keys, Key{
			Label:  string(rune('0' + d)),
			Group:  GroupNumerical,
			Event:  calculator.DigitEvent(d),
			Row:    4 - (d-1)/3,
			Column: (d - 1) % 3,
		})
	}
	return keys
}
