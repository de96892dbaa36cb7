// Package sampling implements generation of random bytes and scalars,
// either securely from the system source or deterministically from a
// keyed XOF.
package sampling

import (
	"crypto/rand"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG is a PRNG backed by the system entropy source. It is
// safe for concurrent use.
type ThreadSafePRNG struct{}

// NewPRNG returns a new thread-safe PRNG.
func NewPRNG() *ThreadSafePRNG {
	return &ThreadSafePRNG{}
}

// Read fills sum with random bytes from the system source.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG deterministically expands a key into a sequence of random
// bytes using the blake2b XOF. Two KeyedPRNG instantiated with the same
// key produce the same stream. It must not be read concurrently, as the
// resulting interleaving would not be deterministic.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG from the given key. A nil key is
// treated as an empty one and yields a fixed, publicly known stream.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	prng := &KeyedPRNG{
		key: make([]byte, len(key)),
		xof: xof,
	}
	copy(prng.key, key)
	return prng, nil
}

// Key returns a copy of the key the PRNG was seeded with.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read fills sum with the next bytes of the keyed stream.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset rewinds the PRNG to the beginning of its stream.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
