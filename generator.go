package uuid

import (
	"crypto/rand"
	"io"
)

// Generator produces version 4 (random) UUIDs from a source of random bytes.
//
// A Generator holds no mutable state of its own; it is safe for concurrent
// use whenever its reader is. The default reader, crypto/rand.Reader, is.
type Generator struct {
	randReader io.Reader
}

// NewGenerator creates a new generator with crypto/rand as the random source
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
	}
}

// NewGeneratorWithReader creates a new generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		randReader: r,
	}
}

// NewV4 reads 16 random bytes and stamps them with the RFC 4122 variant
// (10xxxxxx in byte 8) and the random version (0100xxxx in byte 6).
// Errors from the reader are returned unchanged.
func (g *Generator) NewV4() (UUID, error) {
	var uuid UUID
	if _, err := io.ReadFull(g.randReader, uuid[:]); err != nil {
		return Nil, err
	}
	uuid[versionByte] = uuid[versionByte]&versionMask | byte(VersionRandom)<<versionShift
	uuid[variantByte] = uuid[variantByte]&variantRFCMask | variantRFCBits
	return uuid, nil
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuid.Must(uuid.NewV4())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultGenerator is the package-level generator used by the New* functions
var defaultGenerator = NewGenerator()

// NewV4 generates a random UUID using the default generator.
func NewV4() (UUID, error) {
	return defaultGenerator.NewV4()
}

// New is an alias for NewV4.
func New() (UUID, error) {
	return defaultGenerator.NewV4()
}
