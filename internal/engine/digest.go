package engine

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Digest computes the stable 64-bit hash that seeds all deterministic
// pseudo-variation in the synthesizer. Inputs are lowercased and have runs
// of whitespace collapsed before hashing, so requests that differ only in
// case or spacing produce the same digest. xxhash is stable across runs and
// platforms, unlike language-default map or string hashing.
func Digest(taskText, contextText string, priority Priority) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(normalizeForDigest(taskText))
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(normalizeForDigest(contextText))
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(string(priority))
	return h.Sum64()
}

func normalizeForDigest(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// evolveDigest advances the digest when the synthesizer needs a fresh index
// after a collision. The constants are part of the output contract: changing
// them changes every historical risk-factor selection.
func evolveDigest(d uint64) uint64 {
	return d*31 + 17
}
