package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShareLink(t *testing.T) {
	link, err := BuildShareLink("+91 98765 43210", "http://localhost:8080/bills/invoice-1.pdf")
	require.NoError(t, err)

	// normalized to digits only, country code kept
	assert.Contains(t, link, "https://wa.me/919876543210?text=")
	assert.Contains(t, link, "invoice-1.pdf")
	assert.NotContains(t, link, " ")
}

func TestBuildShareLink_EncodesMessage(t *testing.T) {
	link, err := BuildShareLink("9876543210", "http://localhost:8080/bills/invoice-1.pdf")
	require.NoError(t, err)
	assert.Contains(t, link, "Hello%2C+please+find+your+invoice+here%3A")
}

func TestBuildShareLink_RejectsShortNumbers(t *testing.T) {
	for _, contact := range []string{
		"123",
		"123456789",     // 9 digits, below the floor
		"+12-345-6789",  // still 9 digits once stripped
		"",
		"abc",
	} {
		_, err := BuildShareLink(contact, "http://example.com/bills/x.pdf")
		assert.ErrorIs(t, err, ErrInvalidPhone, "contact %q", contact)
	}
}
