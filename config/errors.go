package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMarket is returned when a market name is not registered.
var ErrUnknownMarket = errors.New("unknown market configuration")

// UnknownMarketError reports a lookup of an unregistered market and
// lists the names that are registered.
type UnknownMarketError struct {
	Name      string
	Available []string
}

// Error implements the error interface.
func (e *UnknownMarketError) Error() string {
	return fmt.Sprintf("unknown market configuration %q (available: %s)",
		e.Name, strings.Join(e.Available, ", "))
}

// Is reports whether target is ErrUnknownMarket.
func (e *UnknownMarketError) Is(target error) bool {
	return target == ErrUnknownMarket
}

// ParseError reports a failure parsing a market configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
