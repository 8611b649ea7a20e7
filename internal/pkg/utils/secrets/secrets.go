// Package secrets verifies passwords stored by the identity store in the
// "<algorithm>$<params>$<salt>$<hash>" hasher format.
package secrets

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

const (
	PBKDF2Iterations = 870000
	SaltChars        = 22

	unusablePrefix = "!"
	saltAlphabet   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var ErrUnsupportedHash = errors.New("unsupported hash format")

// MakePassword encodes password as pbkdf2_sha256 with a random salt.
func MakePassword(password string, iterations int) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	if iterations <= 0 {
		iterations = PBKDF2Iterations
	}
	salt, err := randomSalt(SaltChars)
	if err != nil {
		return "", err
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, sha256.Size, sha256.New)
	return fmt.Sprintf("pbkdf2_sha256$%d$%s$%s", iterations, salt, base64.StdEncoding.EncodeToString(key)), nil
}

// VerifyPassword reports whether password matches encoded. Unusable
// passwords ("!...") never match.
func VerifyPassword(password, encoded string) (bool, error) {
	if encoded == "" || strings.HasPrefix(encoded, unusablePrefix) {
		return false, nil
	}
	algorithm, rest, ok := strings.Cut(encoded, "$")
	if !ok {
		return false, ErrUnsupportedHash
	}

	switch algorithm {
	case "pbkdf2_sha256":
		return verifyPBKDF2(password, rest, sha256.New, sha256.Size)
	case "pbkdf2_sha1":
		return verifyPBKDF2(password, rest, sha1.New, sha1.Size)
	case "argon2":
		return verifyArgon2(password, rest)
	default:
		return false, ErrUnsupportedHash
	}
}

func verifyPBKDF2(password, rest string, h func() hash.Hash, size int) (bool, error) {
	parts := strings.Split(rest, "$")
	if len(parts) != 3 {
		return false, errors.New("invalid pbkdf2 hash")
	}
	iterations, err := strconv.Atoi(parts[0])
	if err != nil || iterations <= 0 {
		return false, errors.New("invalid pbkdf2 iterations")
	}
	want, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return false, err
	}
	got := pbkdf2.Key([]byte(password), []byte(parts[1]), iterations, size, h)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// verifyArgon2 checks "argon2id$v=19$m=...,t=...,p=...$salt$hash".
func verifyArgon2(password, rest string) (bool, error) {
	parts := strings.Split(rest, "$")
	if len(parts) != 5 || parts[0] != "argon2id" {
		return false, ErrUnsupportedHash
	}

	var m, t uint32
	var p uint8
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return false, err
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, err
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, err
	}

	got := argon2.IDKey([]byte(password), salt, t, m, p, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func randomSalt(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = saltAlphabet[int(b)%len(saltAlphabet)]
	}
	return string(buf), nil
}
