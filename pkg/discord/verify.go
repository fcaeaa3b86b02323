package discord

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
)

// Verifier checks an inbound webhook request against Discord's signature
// scheme. The API layer treats it as an opaque capability so tests can
// substitute an always-allow or always-deny implementation.
type Verifier interface {
	// Verify reports whether signature is valid for timestamp||body.
	Verify(body []byte, signature, timestamp string) bool
}

// Ed25519Verifier verifies webhook signatures with the application's
// public key. Discord signs the concatenation of the timestamp header and
// the raw request body with Ed25519.
type Ed25519Verifier struct {
	key ed25519.PublicKey
}

// NewVerifier creates a verifier from a hex-encoded Ed25519 public key,
// as shown on the Discord application portal.
func NewVerifier(hexKey string) (*Ed25519Verifier, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding public key: %w", err)
	}

	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(key))
	}

	return &Ed25519Verifier{key: ed25519.PublicKey(key)}, nil
}

// Verify reports whether signature (hex) is a valid Ed25519 signature of
// timestamp||body under the configured public key.
func (v *Ed25519Verifier) Verify(body []byte, signature, timestamp string) bool {
	if signature == "" || timestamp == "" {
		return false
	}

	sig, err := hex.DecodeString(signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}

	message := make([]byte, 0, len(timestamp)+len(body))
	message = append(message, timestamp...)
	message = append(message, body...)

	return ed25519.Verify(v.key, message, sig)
}
