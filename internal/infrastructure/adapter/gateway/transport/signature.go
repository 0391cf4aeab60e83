package transport

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
)

// SignHMAC returns the hex HMAC-SHA256 of payload under secret
func SignHMAC(secret, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyHMAC checks a hex HMAC-SHA256 signature, optionally prefixed with "sha256="
func VerifyHMAC(secret, payload []byte, signature string) error {
	if len(secret) == 0 {
		return fmt.Errorf("%w: no callback secret configured", errs.ErrUnauthenticated)
	}
	signature = strings.TrimPrefix(strings.TrimSpace(signature), "sha256=")
	if signature == "" {
		return fmt.Errorf("%w: missing signature", errs.ErrUnauthenticated)
	}
	expected := SignHMAC(secret, payload)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(signature))) {
		return fmt.Errorf("%w: signature mismatch", errs.ErrUnauthenticated)
	}
	return nil
}

// VerifySharedSecret compares a static secret header in constant time
func VerifySharedSecret(expected, presented string) error {
	if expected == "" {
		return fmt.Errorf("%w: no callback secret configured", errs.ErrUnauthenticated)
	}
	if presented == "" {
		return fmt.Errorf("%w: missing secret", errs.ErrUnauthenticated)
	}
	if subtle.ConstantTimeCompare([]byte(expected), []byte(presented)) != 1 {
		return fmt.Errorf("%w: secret mismatch", errs.ErrUnauthenticated)
	}
	return nil
}
