package xxhash

import (
	"testing"

	"github.com/scottcagno/chainhash/pkg/util"
)

func TestChecksum32_Deterministic(t *testing.T) {
	b := []byte("the quick brown fox jumps over the lazy dog")
	util.AssertExpected(t, Checksum32(b, 42), Checksum32(b, 42))
	util.AssertExpected(t, Sum32(b), Sum32(b))
}

func TestChecksum32_SeedMatters(t *testing.T) {
	b := []byte("the quick brown fox jumps over the lazy dog")
	util.AssertTrue(t, Checksum32(b, 1) != Checksum32(b, 2))
}

func TestChecksum32_InputSizes(t *testing.T) {
	// exercise the short, word and block paths
	seen := make(map[uint32]int)
	for n := 0; n < 64; n++ {
		seen[Checksum32([]byte(util.RandString(n+1)), 7)]++
	}
	util.AssertTrue(t, len(seen) > 60)
}
