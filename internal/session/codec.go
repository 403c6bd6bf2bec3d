package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors returned by Codec.Decode
var (
	ErrInvalidCookie = errors.New(ErrMsgInvalidFormat)
	ErrBadSignature  = errors.New(ErrMsgInvalidSignature)
	ErrExpired       = errors.New(ErrMsgExpired)
)

// envelope wraps a payload with its expiry
type envelope struct {
	Exp  int64           `json:"exp"`
	Data json.RawMessage `json:"d"`
}

// Codec signs values as base64url(JSON) + "." + base64url(HMAC-SHA256)
type Codec struct {
	key []byte
	now func() time.Time
}

// NewCodec creates a codec with the given signing key
func NewCodec(key []byte) (*Codec, error) {
	if len(key) == 0 {
		return nil, errors.New(ErrMsgKeyRequired)
	}
	return &Codec{key: key, now: time.Now}, nil
}

// Encode signs v so that it is valid for ttl
func (c *Codec) Encode(v any, ttl time.Duration) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	payload, err := json.Marshal(envelope{Exp: c.now().Add(ttl).Unix(), Data: data})
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(payload) + "." +
		base64.RawURLEncoding.EncodeToString(c.sign(payload)), nil
}

// Decode verifies s and unmarshals its payload into v
func (c *Codec) Decode(s string, v any) error {
	if s == "" {
		return fmt.Errorf("%w: %s", ErrInvalidCookie, ErrMsgEmptyValue)
	}

	encodedPayload, encodedSignature, found := strings.Cut(s, ".")
	if !found || strings.Contains(encodedSignature, ".") {
		return ErrInvalidCookie
	}

	payload, err := base64.RawURLEncoding.DecodeString(encodedPayload)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidCookie, ErrMsgDecodePayload, err)
	}
	signature, err := base64.RawURLEncoding.DecodeString(encodedSignature)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidCookie, ErrMsgDecodeSignature, err)
	}

	if !hmac.Equal(signature, c.sign(payload)) {
		return ErrBadSignature
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCookie, err)
	}
	if c.now().Unix() >= env.Exp {
		return ErrExpired
	}

	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCookie, err)
	}
	return nil
}

func (c *Codec) sign(payload []byte) []byte {
	h := hmac.New(sha256.New, c.key)
	h.Write(payload)
	return h.Sum(nil)
}
