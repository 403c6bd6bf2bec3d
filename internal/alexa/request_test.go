package alexa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequest(t *testing.T) {
	const expected = "my-client-id"

	tests := []struct {
		name         string
		clientID     string
		responseType string
		wantCode     ErrorCode
		wantOK       bool
	}{
		{"valid", expected, "token", "", true},
		{"missing client id", "", "token", ErrorInvalidRequest, false},
		{"missing response type", expected, "", ErrorInvalidRequest, false},
		{"missing both", "", "", ErrorInvalidRequest, false},
		{"whitespace client id", " ", "token", ErrorUnauthorizedClient, false},
		{"unknown client id", "not-my-client", "token", ErrorUnauthorizedClient, false},
		{"client id differs by case", "MY-CLIENT-ID", "token", ErrorUnauthorizedClient, false},
		{"code response type", expected, "code", ErrorUnsupportedResponseType, false},
		{"response type differs by case", expected, "Token", ErrorUnsupportedResponseType, false},
		{"missing wins over mismatch", "", "code", ErrorInvalidRequest, false},
		{"client mismatch wins over response type", "other", "code", ErrorUnauthorizedClient, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := ValidateRequest(tt.clientID, tt.responseType, expected)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, code)

			again, okAgain := ValidateRequest(tt.clientID, tt.responseType, expected)
			assert.Equal(t, code, again)
			assert.Equal(t, ok, okAgain)
		})
	}
}
