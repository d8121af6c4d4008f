package model

import (
	"testing"

	"github.com/soocke/tk-calc-go/domain/calculator"
)

var _ calculator.Display = (*DisplayModel)(nil)

func TestDisplayModel_Defaults(t *testing.T) {
	if m := NewDisplayModel(); m.Text() != "0" {
		t.Fatalf("expected fresh model to show 0, got %q", m.Text())
	}
	var zero DisplayModel
	if zero.Text() != "0" {
		t.Fatalf("expected zero value to show 0, got %q", zero.Text())
	}
	zero.SetText("12")
	zero.SetText("12")
	if zero.Text() != "12" {
		t.Fatalf("expected 12, got %q", zero.Text())
	}
	zero.SetText("")
	if zero.Text() != "" {
		t.Fatalf("expected explicit empty text to stick, got %q", zero.Text())
	}

	var nilModel *DisplayModel
	nilModel.SetText("x")
	if nilModel.Text() != "0" {
		t.Fatalf("nil model should be inert, got %q", nilModel.Text())
	}
}

func TestDisplayModel_DrivenByEngine(t *testing.T) {
	m := NewDisplayModel()
	e := calculator.NewEngine(m, nil)
	for _, ev := range []calculator.Event{
		calculator.DigitEvent(6),
		calculator.OperatorEvent(calculator.OpMultiply),
		calculator.DigitEvent(7),
		calculator.EqualsEvent(),
	} {
		e.Handle(ev)
	}
	if m.Text() != "42" {
		t.Fatalf("expected engine result in display model, got %q", m.Text())
	}
}
