package sampling

import (
	"encoding/binary"
	"io"
)

// RandUint64 returns a uniform uint64 read from prng.
func RandUint64(prng io.Reader) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(prng, b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 returns a uniform float between min and max read from
// prng.
func RandFloat64(prng io.Reader, min, max float64) float64 {
	f := float64(RandUint64(prng)) / 1.8446744073709552e+19
	return min + f*(max-min)
}
