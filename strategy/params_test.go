package strategy

import (
	"errors"
	"strings"
	"testing"

	"github.com/connorslab/tradecore/override"
)

type rsi2Params struct {
	RSIPeriod int     `json:"rsi_period"`
	RSILevel  float64 `json:"rsi_level"`
	Long      bool    `json:"long"`
	Symbol    string  `json:"symbol"`

	// Not configurable: unexported and non-basic fields.
	internal int
	Weights  []float64 `json:"weights"`
}

func defaultRSI2() rsi2Params {
	return rsi2Params{RSIPeriod: 2, RSILevel: 5, Long: true, Symbol: "SPY"}
}

func TestWithParams(t *testing.T) {
	got, err := WithParams(defaultRSI2(), "rsi_period:3;rsi_level:8")
	if err != nil {
		t.Fatalf("WithParams error: %v", err)
	}
	if got.RSIPeriod != 3 {
		t.Errorf("RSIPeriod = %d, want 3", got.RSIPeriod)
	}
	if got.RSILevel != 8 {
		t.Errorf("RSILevel = %v, want 8", got.RSILevel)
	}
	if !got.Long || got.Symbol != "SPY" {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestWithParamsEmpty(t *testing.T) {
	base := defaultRSI2()
	got, err := WithParams(base, "")
	if err != nil {
		t.Fatalf("WithParams error: %v", err)
	}
	if got.RSIPeriod != base.RSIPeriod || got.RSILevel != base.RSILevel ||
		got.Long != base.Long || got.Symbol != base.Symbol {
		t.Errorf("WithParams(base, \"\") = %+v, want %+v", got, base)
	}
}

func TestWithParamsUnknownField(t *testing.T) {
	_, err := WithParams(defaultRSI2(), "lookback:20")
	if !errors.Is(err, override.ErrUnknownPath) {
		t.Fatalf("WithParams = %v, want override.ErrUnknownPath", err)
	}
}

func TestParameters(t *testing.T) {
	params := Parameters(defaultRSI2())

	want := map[string]any{
		"rsi_period": 2,
		"rsi_level":  5.0,
		"long":       true,
		"symbol":     "SPY",
	}
	if len(params) != len(want) {
		t.Fatalf("got %d parameters, want %d: %v", len(params), len(want), params)
	}
	for k, v := range want {
		if params[k] != v {
			t.Errorf("params[%q] = %v (%T), want %v", k, params[k], params[k], v)
		}
	}
}

func TestParametersPointer(t *testing.T) {
	p := defaultRSI2()
	params := Parameters(&p)
	if params["rsi_period"] != 2 {
		t.Errorf("params[rsi_period] = %v, want 2", params["rsi_period"])
	}
}

func TestParametersNonStruct(t *testing.T) {
	for _, v := range []any{nil, 42, "text", []int{1}} {
		if params := Parameters(v); len(params) != 0 {
			t.Errorf("Parameters(%v) = %v, want empty", v, params)
		}
	}
}

func TestParametersUntaggedField(t *testing.T) {
	type bare struct {
		Lookback int
	}
	params := Parameters(bare{Lookback: 20})
	if params["Lookback"] != 20 {
		t.Errorf("params = %v, want Lookback:20", params)
	}
}

func TestParameterInfo(t *testing.T) {
	info := ParameterInfo("RSI2", defaultRSI2())

	for _, want := range []string{
		"Available parameters for RSI2:",
		"rsi_period: 2 (int)",
		"rsi_level: 5 (float64)",
		"long: true (bool)",
		"symbol: SPY (string)",
		"--strategy-params",
		"rsi_period:4",
	} {
		if !strings.Contains(info, want) {
			t.Errorf("ParameterInfo missing %q:\n%s", want, info)
		}
	}
}

func TestParameterInfoEmpty(t *testing.T) {
	type empty struct{}
	info := ParameterInfo("Hollow", empty{})
	if info != "No configurable parameters available for Hollow" {
		t.Errorf("ParameterInfo = %q", info)
	}
}
