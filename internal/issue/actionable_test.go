// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "load configuration"},
			want: "failed to load configuration",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "load configuration", Resource: "config.toml"},
			want: "failed to load configuration: config.toml",
		},
		{
			name: "operation, resource and cause",
			err: &ActionableError{
				Operation: "scan for Cargo projects",
				Resource:  ".",
				Cause:     errors.New("permission denied"),
			},
			want: "failed to scan for Cargo projects: .: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().
		WithOperation("load configuration").
		Wrap(os.ErrNotExist).
		BuildError()

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("errors.Is(err, os.ErrNotExist) = false, want true")
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("errors.As(err, *ActionableError) = false, want true")
	}
	if ae.Operation != "load configuration" {
		t.Errorf("Operation = %q, want %q", ae.Operation, "load configuration")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("config.toml").
		WithSuggestion("Check the file contains valid TOML").
		WithSuggestion("Remove the file to fall back to defaults").
		Wrap(errors.New("unexpected token")).
		Build()

	short := err.Format(false)
	for _, want := range []string{
		"failed to load configuration: config.toml: unexpected token",
		"• Check the file contains valid TOML",
		"• Remove the file to fall back to defaults",
	} {
		if !strings.Contains(short, want) {
			t.Errorf("Format(false) missing %q:\n%s", want, short)
		}
	}
	if strings.Contains(short, "Error chain:") {
		t.Errorf("Format(false) should not include the error chain:\n%s", short)
	}

	long := err.Format(true)
	if !strings.Contains(long, "Error chain:") {
		t.Errorf("Format(true) missing error chain:\n%s", long)
	}
	if !strings.Contains(long, "1. unexpected token") {
		t.Errorf("Format(true) missing numbered cause:\n%s", long)
	}
}

func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() without operation = %+v, want nil", got)
	}
	if got := NewErrorContext().WithResource("x").BuildError(); got != nil {
		t.Errorf("BuildError() without operation = %v, want nil", got)
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %+v, want nil", got)
	}

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "run hook")
	if err.Error() != "failed to run hook: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
}
