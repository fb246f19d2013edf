package dispatch

import (
	"context"
	"errors"
	"testing"
)

func TestExecutor_Success(t *testing.T) {
	e := NewExecutor()

	result := e.Execute(context.Background(), "payload", HandlerFunc(func(ctx context.Context, event any) error {
		return nil
	}))

	if !result.IsSuccess() {
		t.Errorf("expected success, got %+v", result)
	}
}

func TestExecutor_HandlerError(t *testing.T) {
	e := NewExecutor()
	boom := errors.New("boom")

	result := e.Execute(context.Background(), nil, HandlerFunc(func(ctx context.Context, event any) error {
		return boom
	}))

	if result.IsSuccess() {
		t.Error("expected failure")
	}
	if !errors.Is(result.Error, boom) {
		t.Errorf("expected boom, got %v", result.Error)
	}
	if result.Panicked {
		t.Error("error must not be reported as panic")
	}
}

func TestExecutor_PanicRecovery(t *testing.T) {
	var hookEvent any
	var hookValue any
	e := NewExecutor(WithPanicHandler(func(event any, panicValue any, stack []byte) {
		hookEvent = event
		hookValue = panicValue
	}))

	result := e.Execute(context.Background(), "evt", HandlerFunc(func(ctx context.Context, event any) error {
		panic("bug")
	}))

	if !result.Panicked {
		t.Fatal("expected panic to be recorded")
	}
	if result.PanicValue != "bug" {
		t.Errorf("expected panic value bug, got %v", result.PanicValue)
	}
	if len(result.PanicStack) == 0 {
		t.Error("expected stack trace captured")
	}
	if hookEvent != "evt" || hookValue != "bug" {
		t.Errorf("expected hook invoked with event and value, got %v / %v", hookEvent, hookValue)
	}
}

func TestExecutor_PanicHandlerPanicIsContained(t *testing.T) {
	e := NewExecutor(WithPanicHandler(func(event any, panicValue any, stack []byte) {
		panic("hook bug")
	}))

	result := e.Execute(context.Background(), nil, HandlerFunc(func(ctx context.Context, event any) error {
		panic("handler bug")
	}))

	if !result.Panicked || result.PanicValue != "handler bug" {
		t.Errorf("expected original panic preserved, got %+v", result)
	}
}

func TestExecutor_CancelledContextSkips(t *testing.T) {
	e := NewExecutor()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	result := e.Execute(ctx, nil, HandlerFunc(func(ctx context.Context, event any) error {
		ran = true
		return nil
	}))

	if !result.Skipped {
		t.Error("expected skipped result")
	}
	if ran {
		t.Error("handler must not run with a cancelled context")
	}
}
