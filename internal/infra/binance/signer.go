package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signer produces the signed-endpoint query signature: HMAC-SHA256 over the
// query string, hex encoded. Keys are held as []byte so they can be wiped.
type Signer struct {
	apiKey    []byte
	apiSecret []byte
}

// NewSigner creates a signer from the configured credentials.
func NewSigner(apiKey, apiSecret string) *Signer {
	return &Signer{
		apiKey:    []byte(apiKey),
		apiSecret: []byte(apiSecret),
	}
}

// APIKey returns the key for the X-MBX-APIKEY header.
func (s *Signer) APIKey() string {
	return string(s.apiKey)
}

// Sign returns the hex HMAC-SHA256 signature of the query string.
func (s *Signer) Sign(query string) string {
	mac := hmac.New(sha256.New, s.apiSecret)
	mac.Write([]byte(query))
	return hex.EncodeToString(mac.Sum(nil))
}

// Wipe clears the credentials from memory.
func (s *Signer) Wipe() {
	if s == nil {
		return
	}
	wipe(s.apiKey)
	wipe(s.apiSecret)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
