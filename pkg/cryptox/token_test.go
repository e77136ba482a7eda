package cryptox

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "cryptox-test")
	if err != nil {
		panic(err)
	}
	SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantLen int
	}{
		{"128-bit token", TokenSize128, 22},
		{"256-bit token", TokenSize256, 43},
		{"512-bit token", TokenSize512, 86},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.Len(t, token, tt.wantLen)

			decoded, err := base64.RawURLEncoding.DecodeString(token)
			require.NoError(t, err)
			require.Len(t, decoded, tt.size)

			token2, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEqual(t, token, token2, "tokens should be unique")
		})
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		token, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}
}

func TestRandomStringGenerator(t *testing.T) {
	t.Run("rejects weak sizes", func(t *testing.T) {
		_, err := NewRandomStringGenerator(8)
		require.Error(t, err)
	})

	t.Run("concurrent output never collides", func(t *testing.T) {
		gen, err := NewRandomStringGenerator(TokenSize128)
		require.NoError(t, err)

		const n = 200
		var (
			mu   sync.Mutex
			seen = make(map[string]struct{}, n)
			wg   sync.WaitGroup
		)
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s, err := gen.Next()
				if err != nil {
					t.Error(err)
					return
				}
				mu.Lock()
				seen[s] = struct{}{}
				mu.Unlock()
			}()
		}
		wg.Wait()
		require.Len(t, seen, n)
	})
}

func TestHashSecret(t *testing.T) {
	hash, err := HashSecret("s3cret")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
	require.Len(t, strings.Split(hash, "$"), 6)

	require.NoError(t, VerifySecret("s3cret", hash))
	require.ErrorIs(t, VerifySecret("wrong", hash), ErrSecretMismatch)

	other, err := HashSecret("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, hash, other, "salts should differ")
}

func TestVerifySecret_InvalidFormat(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"wrong algorithm", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA"},
		{"wrong version", "$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA"},
		{"bad params", "$argon2id$v=19$garbage$c2FsdA$aGFzaA"},
		{"bad salt", "$argon2id$v=19$m=1,t=1,p=1$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifySecret("secret", tt.hash)
			require.Error(t, err)
			require.NotErrorIs(t, err, ErrSecretMismatch)
		})
	}
}
