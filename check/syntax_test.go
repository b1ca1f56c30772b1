package check_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optimode/emailsyntax/check"
	"github.com/optimode/emailsyntax/internal/parse"
	"github.com/optimode/emailsyntax/types"
)

func TestSyntaxChecker(t *testing.T) {
	c := check.NewSyntaxChecker()
	ctx := context.Background()

	tests := []struct {
		name        string
		email       string
		wantOK      bool
		wantDetails string
	}{
		{"valid simple", "user@example.com", true, "syntax ok"},
		{"valid with plus", "user+tag@example.com", true, "syntax ok"},
		{"valid quoted local", `"user name"@example.com`, true, "syntax ok"},
		{"valid comment", "(comment)user@example.com", true, "syntax ok"},
		{"valid numeric tld", "user@example.123", true, "syntax ok"},
		{"empty", "", false, "Email did not have an at(@)."},
		{"no domain", "user@", false, "The domain cannot be empty."},
		{"no local", "@example.com", false, "Local part cannot be empty."},
		{"double dot local", "user..name@example.com", false, "Consecutive dots (.) are not allowed."},
		{"leading dot local", ".user@example.com", false, "Local part cannot start or end with a dot (.) unless quoted."},
		{"consecutive dots domain", "user@exam..ple.com", false, "The domain cannot have an empty DNS label/multi-dot(.)."},
		{"label ends with hyphen", "user@example-.com", false, "DNS label cannot start or end with a hyphen(-)."},
		{"idn rejected", "user@münchen.de", false, "The character ü (0xfc) is not allowed in the domain."},
		{"whitespace not trimmed", " user@example.com", false, "The character   (0x20) is not allowed in the local part."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Check(ctx, parse.NewEmail(tt.email))
			assert.Equal(t, types.LevelSyntax, result.Level)
			assert.Equal(t, tt.wantOK, result.Passed, "Details: %s", result.Details)
			assert.Equal(t, tt.wantDetails, result.Details)
		})
	}
}
