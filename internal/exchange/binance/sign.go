package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// sign computes the lowercase hex HMAC-SHA256 of payload using secret.
func sign(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Params is an ordered list of query parameters. Binance verifies the
// signature against the literal query string, so encoding must preserve
// insertion order; url.Values sorts keys on Encode and cannot be used here.
type Params struct {
	pairs []param
}

type param struct {
	key   string
	value string
}

func NewParams() *Params {
	return &Params{}
}

// Add appends a key/value pair, keeping insertion order.
func (p *Params) Add(key, value string) *Params {
	p.pairs = append(p.pairs, param{key: key, value: value})
	return p
}

// Len returns the number of pairs.
func (p *Params) Len() int {
	return len(p.pairs)
}

// Encode serializes the pairs as key=value joined by '&', URL-encoded, in
// insertion order.
func (p *Params) Encode() string {
	var b strings.Builder
	for i, kv := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}
