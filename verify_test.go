package emailsyntax_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimode/emailsyntax"
)

func TestVerifyEmail_RejectedCorpus(t *testing.T) {
	invalid := []string{
		"Abc.example.com",
		"A@b@c@example.com",
		`a"b(c)d,e:f;g<h>i[j\k]l@example.com`,
		`just"not"right@example.com`,
		"this is\"not\\allowed@example.com",
		`this\ still\"not\\allowed@example.com`,
		"1234567890123456789012345678901234567890123456789012345678901234+x@example.com",
		"john..doe@example.com",
		"john.doe@example..com",
		".test@gmail.com",
		"test.@gmail.com",
		"em(commentinvalid)ail@email.com",
		"",
	}
	for _, email := range invalid {
		t.Run(email, func(t *testing.T) {
			err := emailsyntax.VerifyEmail(email)
			require.Error(t, err)

			var se *emailsyntax.SyntaxError
			assert.True(t, errors.As(err, &se))
			assert.NotEmpty(t, se.Message)
		})
	}
}

func TestVerifyEmailPtr_Nil(t *testing.T) {
	err := emailsyntax.VerifyEmailPtr(nil)
	assert.True(t, emailsyntax.IsSyntaxError(err))
	assert.EqualError(t, err, "Email cannot be null/undefined.")

	assert.EqualError(t, emailsyntax.VerifyLocalPartPtr(nil), "Local part cannot be null/undefined.")
	assert.EqualError(t, emailsyntax.VerifyDomainPtr(nil), "Domain cannot be null/undefined.")
}

func TestVerifyParts(t *testing.T) {
	assert.NoError(t, emailsyntax.VerifyLocalPart(`"test."`))
	assert.EqualError(t, emailsyntax.VerifyLocalPart("test."),
		"Local part cannot start or end with a dot (.) unless quoted.")

	assert.NoError(t, emailsyntax.VerifyDomain("example.com"))
	assert.EqualError(t, emailsyntax.VerifyDomain("example.com."),
		"The domain cannot have an empty DNS label/multi-dot(.).")
}

func TestIsSyntaxError_Wrapped(t *testing.T) {
	err := fmt.Errorf("signup: %w", emailsyntax.VerifyEmail("no-at"))
	assert.True(t, emailsyntax.IsSyntaxError(err))
	assert.False(t, emailsyntax.IsSyntaxError(errors.New("other")))

	custom := emailsyntax.NewSyntaxError("custom rule")
	assert.Equal(t, "custom rule", custom.Error())
}
