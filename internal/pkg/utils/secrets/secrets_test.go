package secrets

import (
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
)

func TestMakePassword(t *testing.T) {
	encoded, err := MakePassword("s3cret", 1000)
	require.NoError(t, err)
	assert.Regexp(t, `^pbkdf2_sha256\$1000\$[A-Za-z0-9]{22}\$[A-Za-z0-9+/=]+$`, encoded)

	other, err := MakePassword("s3cret", 1000)
	require.NoError(t, err)
	assert.NotEqual(t, encoded, other, "salts should differ")

	_, err = MakePassword("", 1000)
	assert.Error(t, err)
}

func TestVerifyPassword_PBKDF2(t *testing.T) {
	encoded, err := MakePassword("correct horse", 1000)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		encoded  string
		want     bool
		wantErr  bool
	}{
		{name: "match", password: "correct horse", encoded: encoded, want: true},
		{name: "mismatch", password: "battery staple", encoded: encoded, want: false},
		{name: "unusable password", password: "anything", encoded: "!Xy12", want: false},
		{name: "empty encoded", password: "anything", encoded: "", want: false},
		{name: "unknown algorithm", password: "x", encoded: "md5$abc$def", wantErr: true},
		{name: "no separator", password: "x", encoded: "plaintext", wantErr: true},
		{name: "bad iterations", password: "x", encoded: "pbkdf2_sha256$zero$salt$aGFzaA==", wantErr: true},
		{name: "truncated", password: "x", encoded: "pbkdf2_sha256$1000$salt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerifyPassword(tt.password, tt.encoded)
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyPassword_Argon2(t *testing.T) {
	salt := []byte("0123456789abcdef")
	key := argon2.IDKey([]byte("pa55word"), salt, 2, 64*1024, 1, 32)
	encoded := fmt.Sprintf("argon2$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		64*1024, 2, 1,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	ok, err := VerifyPassword("pa55word", encoded)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong", encoded)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = VerifyPassword("pa55word", "argon2$argon2i$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA")
	assert.ErrorIs(t, err, ErrUnsupportedHash)
}
