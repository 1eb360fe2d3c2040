package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("+15551234567"))
	assert.True(t, IsValidPhoneNumber("+4"))
	assert.False(t, IsValidPhoneNumber("15551234567"))
	assert.False(t, IsValidPhoneNumber("+15551234567890123")) // 17 digits
	assert.False(t, IsValidPhoneNumber("+1555-123"))
	assert.False(t, IsValidPhoneNumber(""))
}

func TestIsValidFileURL(t *testing.T) {
	assert.True(t, IsValidFileURL("https://cdn.example.com/docs/passport.png"))
	assert.True(t, IsValidFileURL("identity_documents/3f2a-front.png"))
	assert.False(t, IsValidFileURL("passport.png"))
	assert.False(t, IsValidFileURL("/etc/passwd"))
	assert.False(t, IsValidFileURL(""))
}

func TestIsValidCountryCode(t *testing.T) {
	assert.True(t, IsValidCountryCode("US"))
	assert.True(t, IsValidCountryCode("USA"))
	assert.False(t, IsValidCountryCode("U"))
	assert.False(t, IsValidCountryCode("USAX"))
	assert.False(t, IsValidCountryCode("U1"))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("1990-01-01"))
	assert.False(t, IsValidDate("01/01/1990"))
	assert.False(t, IsValidDate("1990-13-01"))
}
