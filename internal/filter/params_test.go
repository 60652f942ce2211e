package filter

import "testing"

func TestParamsFallsBackToDefaultWhenAbsent(t *testing.T) {
	p := NewParams()
	if got := p.Float("sigma", 1.5); got != 1.5 {
		t.Errorf("Float on empty Params = %v, want default 1.5", got)
	}
	if got := p.Int("radius", 3); got != 3 {
		t.Errorf("Int on empty Params = %v, want default 3", got)
	}
	if got := p.String("mode", "normal"); got != "normal" {
		t.Errorf("String on empty Params = %q, want default %q", got, "normal")
	}
}

func TestParamsZeroValueIsUsable(t *testing.T) {
	var p Params
	if got := p.Float("x", 9); got != 9 {
		t.Errorf("Float on zero-value Params = %v, want 9", got)
	}
}

func TestParamsReturnsPresentValue(t *testing.T) {
	p := Params{Floats: map[string]float64{"amount": 2.5}}
	if got := p.Float("amount", 1.0); got != 2.5 {
		t.Errorf("Float = %v, want 2.5", got)
	}
}
