package cryptox

import "fmt"

// RandomStringGenerator produces opaque base64url strings from Size bytes of
// crypto/rand entropy. It holds no state and is safe for concurrent use; two
// generators never share anything beyond the operating system's CSPRNG.
type RandomStringGenerator struct {
	Size int
}

// NewRandomStringGenerator returns a generator for size-byte strings.
// Sizes below TokenSize128 are rejected so output stays unguessable.
func NewRandomStringGenerator(size int) (*RandomStringGenerator, error) {
	if size < TokenSize128 {
		return nil, fmt.Errorf("cryptox: generator size must be at least %d bytes, got %d", TokenSize128, size)
	}
	return &RandomStringGenerator{Size: size}, nil
}

// Next returns a fresh random string.
func (g *RandomStringGenerator) Next() (string, error) {
	return GenerateToken(g.Size)
}
