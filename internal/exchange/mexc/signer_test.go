package mexc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSigner_GoldenSignature pins the signature for a known timestamp,
// secret and parameter set.
func TestSigner_GoldenSignature(t *testing.T) {
	signer := NewSigner("s3cr3t")
	params := NewParams().Set("asset", "DOGE,SHIB")

	assert.Equal(t, "asset=DOGE%2CSHIB", params.Encode())
	assert.Equal(t,
		"d6f254c9ac75c87bf0c16c97de67805cd56aa9c34c6b8edf13aa4e0233f24b33",
		signer.Sign(1700000000000, params),
	)
}

// TestSigner_EmptyParams verifies the signed string is exactly
// "timestamp=<ts>" with no parameters, no trailing separator.
func TestSigner_EmptyParams(t *testing.T) {
	signer := NewSigner("s3cr3t")

	assert.Equal(t,
		"f46ab3ba35e725ca68d5a9bcd2499ff88a48f3c14e899a8c047f7b6cf82b6adf",
		signer.Sign(1700000000000, nil),
	)
	assert.Equal(t, signer.Sign(1700000000000, nil), signer.Sign(1700000000000, NewParams()))
}

// TestSigner_Deterministic verifies identical inputs always produce
// identical signatures.
func TestSigner_Deterministic(t *testing.T) {
	signer := NewSigner("secret-key")
	params := NewParams().Set("asset", "SHIB").Set("accountType", "SPOT")

	first := signer.Sign(1699999999999, params)
	second := signer.Sign(1699999999999, NewParams().Set("asset", "SHIB").Set("accountType", "SPOT"))
	assert.Equal(t, first, second)
}

// TestSigner_OrderSensitive verifies that changing parameter insertion
// order changes the signature.
func TestSigner_OrderSensitive(t *testing.T) {
	signer := NewSigner("secret-key")

	ab := NewParams().Set("a", "1").Set("b", "2")
	ba := NewParams().Set("b", "2").Set("a", "1")

	assert.NotEqual(t, signer.Sign(1700000000000, ab), signer.Sign(1700000000000, ba))
}

// TestSigner_SecretSensitive verifies different secrets produce
// different signatures for the same input.
func TestSigner_SecretSensitive(t *testing.T) {
	params := NewParams().Set("asset", "DOGE")

	assert.NotEqual(t,
		NewSigner("one").Sign(1700000000000, params),
		NewSigner("two").Sign(1700000000000, params),
	)
}

// TestParams_Encode verifies insertion-order encoding and RFC 3986
// escaping of reserved characters.
func TestParams_Encode(t *testing.T) {
	params := NewParams().
		Set("asset", "DOGE,SHIB").
		Set("note", "a b/c")

	assert.Equal(t, "asset=DOGE%2CSHIB&note=a%20b%2Fc", params.Encode())
}

// TestParams_SetReplacesInPlace verifies a duplicate key keeps its
// original position.
func TestParams_SetReplacesInPlace(t *testing.T) {
	params := NewParams().Set("a", "1").Set("b", "2").Set("a", "3")

	assert.Equal(t, 2, params.Len())
	assert.Equal(t, "a=3&b=2", params.Encode())
}

// TestParams_EmptyEncode verifies empty and nil parameter lists encode
// to the empty string.
func TestParams_EmptyEncode(t *testing.T) {
	assert.Equal(t, "", NewParams().Encode())

	var nilParams *Params
	assert.Equal(t, 0, nilParams.Len())
	assert.Equal(t, "", nilParams.Get("missing"))
}
