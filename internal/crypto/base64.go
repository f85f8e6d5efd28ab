package crypto

import (
	"encoding/base64"
)

// ToBase64 encodes bytes as standard base64 with padding (RFC 4648 §4).
// Used for exported public keys.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard base64 with padding.
func FromBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// ToBase64URL encodes bytes as URL-safe base64 without padding (RFC 4648 §5).
// Used for all serialized container fields.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes URL-safe base64, tolerating padded input.
func FromBase64URL(s string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}
	return base64.URLEncoding.DecodeString(s)
}
