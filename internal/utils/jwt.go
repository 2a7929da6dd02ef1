package utils // package utils provides helper functions for token creation and hashing

import (
    "errors" // sentinel error for failed verification
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the JWT string.  Exp stores the expiration
// timestamp as a time.Time and is also what gets persisted onto the admin
// row when a session is recorded.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// ErrInvalidToken is returned for any token that fails verification.  A
// malformed token, a bad signature and an expired token are deliberately
// indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid token")

// SigningMethod maps a configured algorithm name to its jwt implementation.
// Only the HMAC family is supported; unknown names fall back to HS256.
func SigningMethod(alg string) jwt.SigningMethod {
    switch alg {
    case "HS384":
        return jwt.SigningMethodHS384
    case "HS512":
        return jwt.SigningMethodHS512
    default:
        return jwt.SigningMethodHS256
    }
}

// NewAccessToken builds and signs a JWT for an admin.  It takes the signing
// secret, the configured algorithm name, the admin's username and a TTL in
// minutes.  A non-positive TTL falls back to the 7-day default used for
// general token minting; the login flow always passes the configured
// short-lived TTL.  The claims are the subject (sub), expiration (exp) and
// issued at (iat).
func NewAccessToken(secret, alg, username string, ttlMin int) (AccessToken, error) {
    ttl := time.Duration(ttlMin) * time.Minute
    if ttlMin <= 0 {
        ttl = 7 * 24 * time.Hour
    }
    exp := time.Now().UTC().Add(ttl)
    claims := jwt.MapClaims{
        "sub": username,
        "exp": exp.Unix(),
        "iat": time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(SigningMethod(alg), claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// VerifyAccessToken checks a token's signature against the shared secret and
// the configured algorithm, and that its embedded expiry has not passed.  It
// returns the decoded claims on success and ErrInvalidToken on any failure.
// Verification is pure: it never consults storage, so a fresh login does not
// invalidate previously issued tokens — they live out their own expiry.
func VerifyAccessToken(secret, alg, raw string) (jwt.MapClaims, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with anything other than the configured method.
        if t.Method.Alg() != SigningMethod(alg).Alg() {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return nil, ErrInvalidToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return nil, ErrInvalidToken
    }
    return claims, nil
}
