// token_test.go - Tests for token issuance and verification

package token

import (
	"testing" // Go's testing package

	"github.com/stretchr/testify/assert" // For assertions
)

const testSecret = "test-secret" // Signing secret used by these tests

// TestIssueAndVerify tests the issue/verify roundtrip
func TestIssueAndVerify(t *testing.T) {
	tok, err := Issue("ravi", testSecret)
	assert.NoError(t, err)
	assert.NotEmpty(t, tok)

	username, err := Verify(tok, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, "ravi", username) // Verify yields the issued username
}

// TestVerifyWrongSecret tests that a token signed with another secret fails
func TestVerifyWrongSecret(t *testing.T) {
	tok, err := Issue("ravi", testSecret)
	assert.NoError(t, err)

	_, err = Verify(tok, "some-other-secret")
	assert.Error(t, err) // Signature check must fail
}

// TestVerifyMalformed tests that garbage input is rejected
func TestVerifyMalformed(t *testing.T) {
	_, err := Verify("not-a-token", testSecret)
	assert.Error(t, err)

	_, err = Verify("", testSecret)
	assert.Error(t, err)
}

// TestTokenCarriesOnlyUsername tests that tokens issued for different
// principals are indistinguishable apart from the embedded name
func TestTokenCarriesOnlyUsername(t *testing.T) {
	// The same name registered as customer and as admin would get the same
	// token, since the payload carries no role marker.
	a, err := Issue("shared-name", testSecret)
	assert.NoError(t, err)
	b, err := Issue("shared-name", testSecret)
	assert.NoError(t, err)
	assert.Equal(t, a, b) // No expiry or nonce, so issuance is deterministic
}
