package calculator

import "errors"

// InputState classifies the last processed input. It decides how the next
// press is interpreted.
type InputState int

const (
	StateNone InputState = iota
	StateNumber
	StateOperator
	StateEquals
)

func (s InputState) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateNumber:
		return "number"
	case StateOperator:
		return "operator"
	case StateEquals:
		return "equals"
	default:
		return "unknown"
	}
}

// Operator is one of the four binary operations. OpNone means unset.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

func (o Operator) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "unknown"
	}
}

// Symbol returns the glyph shown on the operator's button.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "➕"
	case OpSubtract:
		return "➖"
	case OpMultiply:
		return "✖"
	case OpDivide:
		return "➗"
	default:
		return ""
	}
}

// EventKind enumerates the presses the engine understands.
type EventKind int

const (
	EventDigit EventKind = iota + 1
	EventDecimal
	EventOperator
	EventEquals
	EventClear
	EventSign
	EventPercent
)

func (k EventKind) String() string {
	switch k {
	case EventDigit:
		return "digit"
	case EventDecimal:
		return "decimal"
	case EventOperator:
		return "operator"
	case EventEquals:
		return "equals"
	case EventClear:
		return "clear"
	case EventSign:
		return "sign"
	case EventPercent:
		return "percent"
	default:
		return "unknown"
	}
}

// Event is a single button press. Digit is read only for EventDigit and Op
// only for EventOperator.
type Event struct {
	Kind  EventKind
	Digit int
	Op    Operator
}

func DigitEvent(d int) Event          { return Event{Kind: EventDigit, Digit: d} }
func OperatorEvent(op Operator) Event { return Event{Kind: EventOperator, Op: op} }
func DecimalEvent() Event             { return Event{Kind: EventDecimal} }
func EqualsEvent() Event              { return Event{Kind: EventEquals} }
func ClearEvent() Event               { return Event{Kind: EventClear} }
func SignEvent() Event                { return Event{Kind: EventSign} }
func PercentEvent() Event             { return Event{Kind: EventPercent} }

// Display is the text surface the engine writes its result to.
type Display interface {
	Text() string
	SetText(string)
}

// textDisplay is the in-memory Display used when none is supplied.
type textDisplay struct{ text string }

func (d *textDisplay) Text() string     { return d.text }
func (d *textDisplay) SetText(s string) { d.text = s }

const (
	// MaxDisplayLen is the display width in characters.
	MaxDisplayLen = 11
	// ErrorText replaces the display after a failed computation.
	ErrorText = "Error"
	zeroText  = "0"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("result out of range")
	ErrNoOperator     = errors.New("no operator set")
)
