// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "sku not found")

	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "sku not found" {
		t.Errorf("expected message 'sku not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("exit status 1")
	ctx := map[string]any{
		"command":  "az",
		"location": "francesouth",
	}

	err := WrapWithContext(ErrCodeUnavailable, "failed to list VM sizes", cause, ctx)

	if err.Code != ErrCodeUnavailable {
		t.Errorf("expected code %s, got %s", ErrCodeUnavailable, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["location"] != "francesouth" {
		t.Errorf("expected location to be francesouth")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeMalformedOutput, "gofmt rejected output", errors.New("1:1: expected 'package'")),
			expected: "[MALFORMED_OUTPUT] gofmt rejected output: 1:1: expected 'package'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	inner := New(ErrCodeUnavailable, "list locations")
	wrapped := fmt.Errorf("fetch regions: %w", inner)

	if got := CodeOf(wrapped); got != ErrCodeUnavailable {
		t.Errorf("CodeOf() = %q, want %q", got, ErrCodeUnavailable)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", got)
	}
}

func TestIsCode(t *testing.T) {
	inner := New(ErrCodeTimeout, "deadline")
	outer := Wrap(ErrCodeUnavailable, "fetch failed", fmt.Errorf("context: %w", inner))

	if !IsCode(outer, ErrCodeUnavailable) {
		t.Error("expected outer code to match")
	}
	if !IsCode(outer, ErrCodeTimeout) {
		t.Error("expected nested code to match")
	}
	if IsCode(outer, ErrCodeNotFound) {
		t.Error("unexpected match for NOT_FOUND")
	}
	if IsCode(nil, ErrCodeInternal) {
		t.Error("nil error must not match")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeUnauthorized,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeUnavailable,
		ErrCodeMalformedOutput,
	}

	seen := make(map[ErrorCode]bool)
	for _, code := range codes {
		if code == "" {
			t.Error("error code must not be empty")
		}
		if seen[code] {
			t.Errorf("duplicate error code %s", code)
		}
		seen[code] = true
	}
}
