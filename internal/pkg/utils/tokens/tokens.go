package tokens

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// Authorization schemes accepted by the API.
const (
	SchemeToken  = "token"
	SchemeBearer = "bearer"
	SchemeBasic  = "basic"
)

// KeyLength is the length of an API token key: 20 random bytes, hex encoded.
const KeyLength = 40

// NewKey generates a fresh API token key.
func NewKey() (string, error) {
	buf := make([]byte, KeyLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// ParseAuthorization splits an Authorization header into a lower-cased scheme
// and its credential. ok is false when the header is not "<scheme> <credential>".
func ParseAuthorization(header string) (scheme, credential string, ok bool) {
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return "", "", false
	}
	return strings.ToLower(fields[0]), fields[1], true
}

// ParseBasic decodes a Basic credential into username and password.
func ParseBasic(credential string) (username, password string, ok bool) {
	raw, err := base64.StdEncoding.DecodeString(credential)
	if err != nil {
		return "", "", false
	}
	return strings.Cut(string(raw), ":")
}
