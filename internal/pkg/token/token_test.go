package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	iss := NewIssuer("secret", 30*24*time.Hour)
	tok, err := iss.Issue("u-1", "a@b.in", "member")
	require.NoError(t, err)

	claims, err := iss.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "a@b.in", claims.Email)
	assert.Equal(t, "member", claims.Role)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerify_Expired(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	iss.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := iss.Issue("u-1", "a@b.in", "member")
	require.NoError(t, err)

	iss.now = time.Now
	_, err = iss.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	tok, err := NewIssuer("one", time.Hour).Issue("u-1", "a@b.in", "admin")
	require.NoError(t, err)
	_, err = NewIssuer("two", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := NewIssuer("secret", time.Hour).Verify("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_RejectsNoneAlg(t *testing.T) {
	claims := Claims{UserID: "u-1", Role: "admin", RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = NewIssuer("secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
