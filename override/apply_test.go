package override

import (
	"errors"
	"reflect"
	"testing"
)

type rsiConfig struct {
	RSIPeriod int     `json:"rsi_period"`
	RSILevel  int     `json:"rsi_level"`
	Threshold float64 `json:"threshold"`
	Long      bool    `json:"long"`
	Symbol    string  `json:"symbol"`
}

func TestApplyOverridesFields(t *testing.T) {
	base := rsiConfig{RSIPeriod: 2, RSILevel: 5, Threshold: 0.5, Long: true, Symbol: "SPY"}

	got, err := Apply(base, "rsi_level:8;rsi_period:3")
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	want := rsiConfig{RSIPeriod: 3, RSILevel: 8, Threshold: 0.5, Long: true, Symbol: "SPY"}
	if got != want {
		t.Errorf("Apply = %+v, want %+v", got, want)
	}
	if base.RSIPeriod != 2 || base.RSILevel != 5 {
		t.Errorf("base mutated: %+v", base)
	}
}

func TestApplyEmptyString(t *testing.T) {
	base := rsiConfig{RSIPeriod: 2, RSILevel: 5, Threshold: 0.5, Long: true, Symbol: "SPY"}

	got, err := Apply(base, "")
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if got != base {
		t.Errorf("Apply with empty overrides = %+v, want %+v", got, base)
	}
}

func TestApplyIdempotent(t *testing.T) {
	base := rsiConfig{RSIPeriod: 2, RSILevel: 5, Threshold: 0.5}
	overrides := "rsi_level:8;threshold:0.75;long:true"

	once, err := Apply(base, overrides)
	if err != nil {
		t.Fatalf("first Apply error: %v", err)
	}
	twice, err := Apply(once, overrides)
	if err != nil {
		t.Fatalf("second Apply error: %v", err)
	}
	if once != twice {
		t.Errorf("Apply not idempotent: once=%+v twice=%+v", once, twice)
	}
}

func TestApplyTypeConversion(t *testing.T) {
	base := rsiConfig{RSIPeriod: 2, Threshold: 0.5, Long: false, Symbol: "SPY"}

	got, err := Apply(base, "threshold:1.25;long:true;symbol:QQQ")
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if got.Threshold != 1.25 {
		t.Errorf("Threshold = %v, want 1.25", got.Threshold)
	}
	if !got.Long {
		t.Error("Long = false, want true")
	}
	if got.Symbol != "QQQ" {
		t.Errorf("Symbol = %q, want %q", got.Symbol, "QQQ")
	}
}

func TestApplyUnknownPath(t *testing.T) {
	base := rsiConfig{RSIPeriod: 2, RSILevel: 5}

	_, err := Apply(base, "unknown_field:1")
	if !errors.Is(err, ErrUnknownPath) {
		t.Fatalf("Apply = %v, want ErrUnknownPath", err)
	}

	var dirErr *DirectiveError
	if !errors.As(err, &dirErr) {
		t.Fatalf("error %v is not a *DirectiveError", err)
	}
	if dirErr.Path != "unknown_field" {
		t.Errorf("Path = %q, want %q", dirErr.Path, "unknown_field")
	}
	if base.RSIPeriod != 2 || base.RSILevel != 5 {
		t.Errorf("base mutated after failed Apply: %+v", base)
	}
}

func TestApplyBadLiteral(t *testing.T) {
	base := rsiConfig{RSIPeriod: 2, Long: true}

	tests := []struct {
		name      string
		overrides string
	}{
		{name: "non-numeric for int", overrides: "rsi_period:fast"},
		{name: "non-boolean for bool", overrides: "long:maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(base, tt.overrides)
			if !errors.Is(err, ErrTypeConversion) {
				t.Fatalf("Apply(%q) = %v, want ErrTypeConversion", tt.overrides, err)
			}
		})
	}
}

func TestApplyFractionalLiteralForIntField(t *testing.T) {
	base := rsiConfig{RSIPeriod: 2, RSILevel: 5}

	_, err := Apply(base, "rsi_period:2.5")
	if !errors.Is(err, ErrTypeConversion) {
		t.Fatalf("Apply = %v, want ErrTypeConversion", err)
	}

	var dirErr *DirectiveError
	if !errors.As(err, &dirErr) {
		t.Fatalf("error %v is not a *DirectiveError", err)
	}
	if dirErr.Path != "rsi_period" {
		t.Errorf("Path = %q, want %q", dirErr.Path, "rsi_period")
	}
	if dirErr.Value != "2.5" {
		t.Errorf("Value = %q, want %q", dirErr.Value, "2.5")
	}
}

func TestApplyAggregatesFailures(t *testing.T) {
	base := rsiConfig{RSIPeriod: 2, RSILevel: 5}

	_, err := Apply(base, "missing_a:1;rsi_period:nope;missing_b:2;rsi_level:9")
	if err == nil {
		t.Fatal("Apply succeeded, want aggregate error")
	}

	var applyErr *ApplyError
	if !errors.As(err, &applyErr) {
		t.Fatalf("error %v is not an *ApplyError", err)
	}
	if len(applyErr.Errors) != 3 {
		t.Fatalf("got %d failures, want 3: %v", len(applyErr.Errors), applyErr)
	}
	if !errors.Is(err, ErrUnknownPath) {
		t.Error("aggregate does not wrap ErrUnknownPath")
	}
	if !errors.Is(err, ErrTypeConversion) {
		t.Error("aggregate does not wrap ErrTypeConversion")
	}

	wantPaths := []string{"missing_a", "rsi_period", "missing_b"}
	for i, e := range applyErr.Errors {
		var dirErr *DirectiveError
		if !errors.As(e, &dirErr) {
			t.Fatalf("failure %d is not a *DirectiveError: %v", i, e)
		}
		if dirErr.Path != wantPaths[i] {
			t.Errorf("failure %d path = %q, want %q", i, dirErr.Path, wantPaths[i])
		}
	}
}

func TestApplyInvalidDirectiveString(t *testing.T) {
	base := rsiConfig{RSIPeriod: 2}

	_, err := Apply(base, "no-colon-here")
	if !errors.Is(err, ErrInvalidDirective) {
		t.Fatalf("Apply = %v, want ErrInvalidDirective", err)
	}
}

type nestedConfig struct {
	Name string `json:"name"`
	Risk struct {
		MaxDrawdown float64 `json:"max_drawdown"`
		MaxLeverage int     `json:"max_leverage"`
	} `json:"risk"`
	Tags []string `json:"tags"`
}

func TestApplyNestedPath(t *testing.T) {
	var base nestedConfig
	base.Name = "rsi2"
	base.Risk.MaxDrawdown = 0.1
	base.Risk.MaxLeverage = 2
	base.Tags = []string{"mean-reversion"}

	got, err := Apply(base, "risk.max_drawdown:0.25;risk.max_leverage:4")
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if got.Risk.MaxDrawdown != 0.25 {
		t.Errorf("MaxDrawdown = %v, want 0.25", got.Risk.MaxDrawdown)
	}
	if got.Risk.MaxLeverage != 4 {
		t.Errorf("MaxLeverage = %d, want 4", got.Risk.MaxLeverage)
	}
	if !reflect.DeepEqual(got.Tags, base.Tags) {
		t.Errorf("Tags = %v, want %v", got.Tags, base.Tags)
	}
}

func TestApplyMapConfig(t *testing.T) {
	base := map[string]any{
		"rsi_period": 2.0,
		"rsi_level":  5.0,
	}

	got, err := Apply(base, "rsi_level:8")
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if got["rsi_level"] != 8.0 {
		t.Errorf("rsi_level = %v, want 8", got["rsi_level"])
	}
	if base["rsi_level"] != 5.0 {
		t.Errorf("base mutated: %v", base)
	}
}
