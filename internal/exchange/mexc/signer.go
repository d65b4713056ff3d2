package mexc

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Signer produces the authentication signature for MEXC v3 signed
// requests.
type Signer struct {
	secret string
}

// NewSigner creates a signer for the given account secret key.
func NewSigner(secret string) *Signer {
	return &Signer{secret: secret}
}

// Sign computes the HMAC-SHA256 hex digest over the canonical request
// string. With parameters present the signed string is
// "k=v&k2=v2&timestamp=<ts>"; without parameters it is exactly
// "timestamp=<ts>". The result is deterministic and sensitive to
// parameter insertion order.
func (s *Signer) Sign(timestamp int64, params *Params) string {
	payload := fmt.Sprintf("timestamp=%d", timestamp)
	if params.Len() > 0 {
		payload = params.Encode() + "&" + payload
	}

	mac := hmac.New(sha256.New, []byte(s.secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
