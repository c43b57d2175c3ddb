package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last@sub.example.org", true},
		{"user@localhost", false},
		{"@example.com", false},
		{"user@", false},
		{"no-at-sign", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestIsComplexPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"meets all requirements", "Str0ng!pass", true},
		{"too short", "Ab1!xyz", false},
		{"no uppercase", "weak1pass!", false},
		{"no lowercase", "WEAK1PASS!", false},
		{"no digit", "Weakpass!!", false},
		{"no symbol", "Weakpass11", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsComplexPassword(tt.password))
		})
	}
}
