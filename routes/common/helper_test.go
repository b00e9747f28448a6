package common

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"f@f.com",
		"joe@bloggs.com",
		"test098@testing345test.com",
		"First.Last@Example.Co.Uk",
	}
	for _, email := range valid {
		assert.True(t, ValidEmail(email), email)
	}

	invalid := []string{
		"",
		"notanemail",
		"missing@tld",
		"@nobody.com",
		"spaces in@address.com",
		"trailing@dot.com extra",
	}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), email)
	}
}

func TestDecodeBodyJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(
		`{"email_address":"f@f.com","password":"yu"}`))
	req.Header.Set("Content-Type", "application/json")

	var dst struct {
		EmailAddress string `json:"email_address"`
		Password     string `json:"password"`
	}
	require.NoError(t, DecodeBody(req, &dst))

	assert.Equal(t, "f@f.com", dst.EmailAddress)
	assert.Equal(t, "yu", dst.Password)
}

func TestDecodeBodyForm(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(
		"email_address=f%40f.com&password=yu"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var dst map[string]interface{}
	require.NoError(t, DecodeBody(req, &dst))

	assert.Equal(t, "f@f.com", dst["email_address"])
	assert.Equal(t, "yu", dst["password"])
}

func TestDecodeBodyRejectsMalformedJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	var dst map[string]interface{}
	assert.Error(t, DecodeBody(req, &dst))
}
