package calculator

import (
	"errors"
	"log/slog"
	"strings"
)

// Engine is the calculator state machine. It owns the operands, the pending
// operators and the input state, and writes every visible change to its
// Display. Handlers run to completion one at a time; the engine is not safe
// for concurrent presses (Stats is the exception).
type Engine struct {
	display Display
	logger  *slog.Logger

	a, b   string
	op     Operator
	prevOp Operator
	state  InputState

	stats counters
}

// NewEngine returns an engine in the cleared state writing to display. A nil
// display selects an in-memory one.
func NewEngine(display Display, logger *slog.Logger) *Engine {
	if display == nil {
		display = &textDisplay{}
	}
	e := &Engine{display: display, logger: logger}
	e.reset()
	return e
}

// Handle dispatches a single press.
func (e *Engine) Handle(ev Event) {
	switch ev.Kind {
	case EventDigit:
		e.Digit(ev.Digit)
	case EventDecimal:
		e.Decimal()
	case EventOperator:
		e.Operate(ev.Op)
	case EventEquals:
		e.Equals()
	case EventClear:
		e.Clear()
	case EventSign:
		e.ToggleSign()
	case EventPercent:
		e.Percent()
	default:
		if e.logger != nil {
			e.logger.Warn("unknown calculator event", "kind", int(ev.Kind))
		}
	}
}

// Digit enters d (0-9) into the display.
func (e *Engine) Digit(d int) {
	if d < 0 || d > 9 {
		if e.logger != nil {
			e.logger.Warn("digit out of range", "digit", d)
		}
		return
	}
	e.stats.events.Add(1)
	if e.state == StateEquals {
		e.reset()
	}
	digit := string(rune('0' + d))
	text := e.display.Text()
	switch e.state {
	case StateNone:
		switch {
		case strings.HasPrefix(text, "-"):
			e.display.SetText("-" + digit)
		case strings.HasSuffix(text, "."):
			e.display.SetText(text + digit)
		default:
			e.display.SetText(digit)
		}
	case StateNumber:
		switch {
		case text == zeroText:
			e.display.SetText(digit)
		case text == "-"+zeroText:
			e.display.SetText("-" + digit)
		case len(text) < MaxDisplayLen:
			e.display.SetText(text + digit)
		}
	case StateOperator:
		if strings.HasSuffix(text, ".") && parseValue(e.a) != 0 {
			e.display.SetText(text + digit)
		} else {
			e.display.SetText(digit)
		}
	}
	e.setState(StateNumber)
}

// Decimal adds a decimal point to the number being entered. After an
// operator or a result it starts a fresh "0.".
func (e *Engine) Decimal() {
	e.stats.events.Add(1)
	switch {
	case e.showingError():
		e.display.SetText(zeroText)
	case e.state == StateOperator:
		e.display.SetText(zeroText)
	case e.state == StateEquals:
		e.reset()
	}
	text := e.display.Text()
	if !strings.Contains(text, ".") && len(text) < MaxDisplayLen {
		e.display.SetText(text + ".")
	}
	e.setState(StateNumber)
}

// Operate records op as the pending operation, first folding any complete
// pending operation into operand A.
func (e *Engine) Operate(op Operator) {
	if e.showingError() {
		return
	}
	e.stats.events.Add(1)
	switch e.state {
	case StateNone, StateNumber:
		if e.a == "" {
			e.a = e.display.Text()
		} else {
			e.b = e.display.Text()
			if !e.compute() {
				return
			}
		}
		e.pushOperator(op)
	case StateOperator:
		e.op = op
	case StateEquals:
		if e.a == "" {
			e.a = e.display.Text()
		}
		e.pushOperator(op)
	}
	e.setState(StateOperator)
}

// Equals completes the pending operation. Repeated presses repeat the last
// operation on its own result.
func (e *Engine) Equals() {
	if e.showingError() {
		return
	}
	e.stats.events.Add(1)
	switch e.state {
	case StateNumber:
		if e.a != "" {
			e.b = e.display.Text()
			if !e.compute() {
				return
			}
		}
	case StateOperator:
		if e.a != "" && e.b != "" {
			if e.prevOp != OpNone {
				e.op = e.prevOp
			}
			if !e.compute() {
				return
			}
		}
	case StateEquals:
		if e.a != "" && e.b != "" {
			if !e.compute() {
				return
			}
		}
	}
	e.setState(StateEquals)
}

// Clear resets the display and all operation state.
func (e *Engine) Clear() {
	e.stats.events.Add(1)
	e.reset()
	if e.logger != nil {
		e.logger.Debug("calculator cleared")
	}
}

// ToggleSign negates the displayed number. When the display shows operand A
// after an operator or result, A is negated with it.
func (e *Engine) ToggleSign() {
	if e.showingError() {
		return
	}
	e.stats.events.Add(1)
	text := e.display.Text()
	if e.tracksOperand(text) {
		e.a = negate(e.a)
	}
	e.display.SetText(negate(text))
}

// Percent divides the displayed number by 100. When the display shows
// operand A after an operator or result, A is divided with it.
func (e *Engine) Percent() {
	if e.showingError() {
		return
	}
	e.stats.events.Add(1)
	text := e.display.Text()
	if e.tracksOperand(text) {
		e.a = FloatString(parseValue(e.a) / 100)
	}
	e.display.SetText(FloatString(parseValue(text) / 100))
}

// Text returns the current display text.
func (e *Engine) Text() string { return e.display.Text() }

// State returns the current input state.
func (e *Engine) State() InputState { return e.state }

// Operands returns operand A and operand B; "" means unset.
func (e *Engine) Operands() (a, b string) { return e.a, e.b }

// Operators returns the pending and the previous operator.
func (e *Engine) Operators() (op, prev Operator) { return e.op, e.prevOp }

// compute folds the pending operation into operand A and shows the cleaned
// result. It reports false when the press must stop, either because the
// engine failed into the error display or because the operation could not
// run.
func (e *Engine) compute() bool {
	res, err := Apply(e.op, e.a, e.b)
	if err != nil {
		if errors.Is(err, ErrDivisionByZero) || errors.Is(err, ErrOverflow) {
			e.fail(err)
			return false
		}
		if e.logger != nil {
			e.logger.Error("calculation skipped", "op", e.op.String(), "a", e.a, "b", e.b, "error", err)
		}
		return false
	}
	e.stats.computations.Add(1)
	if e.logger != nil {
		e.logger.Debug("calculation", "op", e.op.String(), "a", e.a, "b", e.b, "result", res)
	}
	e.a = res
	e.display.SetText(Cleanup(res))
	return true
}

// fail clears everything and leaves the error indicator on the display.
func (e *Engine) fail(err error) {
	e.stats.failures.Add(1)
	if e.logger != nil {
		e.logger.Warn("calculation failed", "op", e.op.String(), "a", e.a, "b", e.b, "error", err)
	}
	e.reset()
	e.display.SetText(ErrorText)
}

func (e *Engine) pushOperator(op Operator) {
	if e.op != OpNone {
		e.prevOp = e.op
	}
	e.op = op
}

func (e *Engine) reset() {
	e.display.SetText(zeroText)
	e.a, e.b = "", ""
	e.op, e.prevOp = OpNone, OpNone
	e.state = StateNone
}

func (e *Engine) setState(next InputState) {
	prev := e.state
	e.state = next
	if e.logger != nil && prev != next {
		e.logger.Debug("calculator state transition", "from", prev.String(), "to", next.String(), "display", e.display.Text())
	}
}

func (e *Engine) showingError() bool { return e.display.Text() == ErrorText }

// tracksOperand reports whether text is operand A on display after an
// operator or a result.
func (e *Engine) tracksOperand(text string) bool {
	if e.state != StateOperator && e.state != StateEquals || e.a == "" {
		return false
	}
	return parseValue(text) == parseValue(e.a)
}

func negate(s string) string {
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return rest
	}
	return "-" + s
}
