package presenter

import (
	"testing"

	"github.com/soocke/tk-calc-go/domain/calculator"
	"github.com/soocke/tk-calc-go/ui/model"
	"github.com/soocke/tk-calc-go/ui/theme"
)

type mockView struct {
	displays []string
	palettes []theme.Palette
}

func (v *mockView) SetDisplay(s string)          { v.displays = append(v.displays, s) }
func (v *mockView) ApplyPalette(p theme.Palette) { v.palettes = append(v.palettes, p) }

func (v *mockView) lastDisplay() string {
	if len(v.displays) == 0 {
		return ""
	}
	return v.displays[len(v.displays)-1]
}

type mockEngine struct{ events []calculator.Event }

func (e *mockEngine) Handle(ev calculator.Event) { e.events = append(e.events, ev) }

type staticDisplay string

func (d staticDisplay) Text() string { return string(d) }

func newWiredPresenter(view *mockView, dark bool) (*CalculatorPresenter, *model.DisplayModel) {
	disp := model.NewDisplayModel()
	eng := calculator.NewEngine(disp, nil)
	return NewCalculatorPresenter(eng, disp, theme.NewMode(dark), view, nil), disp
}

func TestCalculatorPresenter_PressPushesDisplay(t *testing.T) {
	view := &mockView{}
	p, _ := newWiredPresenter(view, true)
	for _, ev := range []calculator.Event{
		calculator.DigitEvent(1),
		calculator.DigitEvent(2),
		calculator.OperatorEvent(calculator.OpAdd),
		calculator.DigitEvent(3),
		calculator.EqualsEvent(),
	} {
		p.Press(ev)
	}
	if len(view.displays) != 5 {
		t.Fatalf("expected one display push per press, got %d", len(view.displays))
	}
	if view.lastDisplay() != "15" {
		t.Fatalf("expected 15, got %q", view.lastDisplay())
	}
}

func TestCalculatorPresenter_KeypadDispatch(t *testing.T) {
	view := &mockView{}
	p, disp := newWiredPresenter(view, true)
	byLabel := map[string]model.Key{}
	for _, k := range model.Keypad() {
		byLabel[k.Label] = k
	}
	for _, label := range []string{"9", calculator.OpDivide.Symbol(), "0", model.LabelEquals} {
		k, ok := byLabel[label]
		if !ok {
			t.Fatalf("keypad has no %q key", label)
		}
		p.Key(k)
	}
	if disp.Text() != calculator.ErrorText || view.lastDisplay() != calculator.ErrorText {
		t.Fatalf("expected error indicator after 9/0=, got model=%q view=%q", disp.Text(), view.lastDisplay())
	}
	p.Key(byLabel[model.LabelClear])
	if view.lastDisplay() != "0" {
		t.Fatalf("expected clear to show 0, got %q", view.lastDisplay())
	}
}

func TestCalculatorPresenter_ToggleDisplayMode(t *testing.T) {
	view := &mockView{}
	p, _ := newWiredPresenter(view, true)
	var modeKey model.Key
	for _, k := range model.Keypad() {
		if k.Action == model.ActionDisplayMode {
			modeKey = k
		}
	}
	p.Key(modeKey)
	if len(view.palettes) != 1 || view.palettes[0] != theme.PaletteFor(false) {
		t.Fatalf("expected switch to light palette, got %+v", view.palettes)
	}
	p.ToggleDisplayMode()
	if len(view.palettes) != 2 || view.palettes[1] != theme.PaletteFor(true) {
		t.Fatalf("expected switch back to dark palette, got %+v", view.palettes)
	}
	if len(view.displays) != 0 {
		t.Fatalf("display mode toggle must not touch the display, got %v", view.displays)
	}
}

func TestCalculatorPresenter_Refresh(t *testing.T) {
	view := &mockView{}
	p := NewCalculatorPresenter(&mockEngine{}, staticDisplay("7"), theme.NewMode(false), view, nil)
	p.Refresh()
	if view.lastDisplay() != "7" || len(view.palettes) != 1 || view.palettes[0] != theme.PaletteFor(false) {
		t.Fatalf("refresh should push display and palette, got displays=%v palettes=%v", view.displays, view.palettes)
	}
}

func TestCalculatorPresenter_ForwardsEvents(t *testing.T) {
	eng := &mockEngine{}
	view := &mockView{}
	p := NewCalculatorPresenter(eng, staticDisplay("0"), nil, view, nil)
	p.Press(calculator.PercentEvent())
	p.ToggleDisplayMode() // no mode switch wired
	if len(eng.events) != 1 || eng.events[0].Kind != calculator.EventPercent {
		t.Fatalf("expected percent forwarded, got %v", eng.events)
	}
	if len(view.palettes) != 0 {
		t.Fatalf("toggle without a mode switch should be a no-op")
	}
}

func TestCalculatorPresenter_NilSafe(t *testing.T) {
	var p *CalculatorPresenter
	p.Press(calculator.ClearEvent())
	p.Key(model.Key{})
	p.ToggleDisplayMode()
	p.Refresh()
}
