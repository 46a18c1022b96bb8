package utils

import (
	"strings"

	"github.com/aarondl/null/v8"
)

func ToPtr[T any](v T) *T {
	return &v
}

func SafeDeref[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}

// NormalizeOptional is the single place where "empty string" becomes NULL
// for optional text columns.
func NormalizeOptional(s null.String) null.String {
	if !s.Valid {
		return s
	}
	trimmed := strings.TrimSpace(s.String)
	if trimmed == "" {
		return null.String{}
	}
	return null.StringFrom(trimmed)
}
