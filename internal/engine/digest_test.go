package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestStable(t *testing.T) {
	d1 := Digest("Launch the product", "budget: low", PriorityHigh)
	d2 := Digest("Launch the product", "budget: low", PriorityHigh)
	assert.Equal(t, d1, d2)
}

func TestDigestNormalizesCaseAndWhitespace(t *testing.T) {
	base := Digest("launch the product", "budget: low", PriorityMedium)

	assert.Equal(t, base, Digest("LAUNCH THE PRODUCT", "budget: low", PriorityMedium))
	assert.Equal(t, base, Digest("  launch   the \t product ", "budget: low", PriorityMedium))
	assert.Equal(t, base, Digest("launch the product", "Budget:    LOW", PriorityMedium))
}

func TestDigestDistinguishesInputs(t *testing.T) {
	base := Digest("launch the product", "", PriorityMedium)

	assert.NotEqual(t, base, Digest("launch the products", "", PriorityMedium))
	assert.NotEqual(t, base, Digest("launch the product", "region: eu", PriorityMedium))
	assert.NotEqual(t, base, Digest("launch the product", "", PriorityHigh))
}

func TestDigestFieldSeparation(t *testing.T) {
	// The separator keeps task/context boundaries unambiguous: moving a
	// word across the boundary must change the digest.
	a := Digest("alpha beta", "gamma", PriorityMedium)
	b := Digest("alpha", "beta gamma", PriorityMedium)
	assert.NotEqual(t, a, b)
}

func TestEvolveDigestChanges(t *testing.T) {
	d := uint64(12345)
	assert.NotEqual(t, d, evolveDigest(d))
	assert.Equal(t, evolveDigest(d), evolveDigest(d))
}
