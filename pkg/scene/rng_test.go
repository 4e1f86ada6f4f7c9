package scene

import (
	"math/rand"
	"testing"
)

func newSeededRNG(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewSource(42))
}
