// Package random supplies seeds for the engine's deterministic PRNG.
//
// A game always runs from a recorded seed; when the host does not pick one
// it is drawn from crypto/rand so the game can still be replayed later.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed draws a fresh seed from crypto/rand.
func NewSeed() (int64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

// Resolve returns *requested when set, otherwise a fresh seed from gen.
// The boolean reports whether the caller supplied the seed.
func Resolve(requested *int64, gen func() (int64, error)) (int64, bool, error) {
	if requested != nil {
		return *requested, true, nil
	}
	if gen == nil {
		gen = NewSeed
	}
	seed, err := gen()
	if err != nil {
		return 0, false, err
	}
	return seed, false, nil
}
