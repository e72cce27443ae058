// Package test contains helpers that remove boilerplate from the package
// tests.
package test

import (
	"errors"
	"testing"
)

// ExpectEquality fails the test if v does not equal expected.
func ExpectEquality[T comparable](t *testing.T, v T, expected T) bool {
	t.Helper()
	if v != expected {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", v, v, expected)
		return false
	}
	return true
}

// DemandEquality is ExpectEquality but stops the test on failure. Use it when
// later checks depend on the value.
func DemandEquality[T comparable](t *testing.T, v T, expected T) {
	t.Helper()
	if v != expected {
		t.Fatalf("equality test of type %T failed: '%v' does not equal '%v'", v, v, expected)
	}
}

// ExpectSuccess tests v for the success value of its type:
//
//	bool -> true
//	error -> nil
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()
	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("expected success (bool)")
			return false
		}
	case error:
		t.Errorf("expected success (error: %v)", v)
		return false
	case nil:
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}
	return true
}

// ExpectFailure tests v for the failure value of its type:
//
//	bool -> false
//	error -> non-nil
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()
	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("expected failure (bool)")
			return false
		}
	case error:
	case nil:
		t.Errorf("expected failure (nil)")
		return false
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}
	return true
}

// ExpectError fails the test unless err matches target via errors.Is.
func ExpectError(t *testing.T, err, target error) bool {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("expected error %v, got %v", target, err)
		return false
	}
	return true
}
