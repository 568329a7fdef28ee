package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsetia1/flowmint/pkg/password"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := password.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "correct horse battery staple", digest)

	assert.True(t, password.Verify("correct horse battery staple", digest))
	assert.False(t, password.Verify("wrong password", digest))
}

// Each hash call salts independently: same input, different digests, both
// of which verify.
func TestHash_NonDeterministic(t *testing.T) {
	d1, err := password.Hash("pw1")
	require.NoError(t, err)
	d2, err := password.Hash("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
	assert.True(t, password.Verify("pw1", d1))
	assert.True(t, password.Verify("pw1", d2))
}

func TestVerify_MalformedDigest(t *testing.T) {
	assert.False(t, password.Verify("pw1", ""))
	assert.False(t, password.Verify("pw1", "not-a-bcrypt-digest"))
}
