package alexa

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// TokenGenerator produces bearer tokens for linked Alexa accounts
type TokenGenerator interface {
	Generate() string
}

// AccessTokenGenerator creates tokens from a cryptographically secure source
type AccessTokenGenerator struct {
	source io.Reader
}

// NewAccessTokenGenerator returns a generator backed by crypto/rand
func NewAccessTokenGenerator() *AccessTokenGenerator {
	return &AccessTokenGenerator{source: rand.Reader}
}

// Generate returns TokenSize random bytes encoded as standard base64.
// It panics if the random source cannot be read.
func (g *AccessTokenGenerator) Generate() string {
	buf := make([]byte, TokenSize)
	defer clear(buf)

	if _, err := io.ReadFull(g.source, buf); err != nil {
		panic(fmt.Sprintf("%s: %v", ErrMsgRandomSourceUnavailable, err))
	}

	return base64.StdEncoding.EncodeToString(buf)
}
