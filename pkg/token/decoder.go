// Package token decodes expiry claims from compact bearer tokens.
//
// The session layer only needs to know WHEN a token lapses, not whether its
// signature is valid; verification belongs to the issuing backend. The
// decoder therefore parses the claims segment without verifying and fails
// closed: anything undecodable is treated as already expired.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoExpiry = errors.New("token carries no expiry claim")

// Decoder extracts the expiry instant from a raw token string.
type Decoder interface {
	ExpiresAt(raw string) (time.Time, error)
}

// JWTDecoder reads the exp claim of a three-segment JWT without verifying
// the signature.
type JWTDecoder struct {
	parser *jwt.Parser
}

func NewJWTDecoder() *JWTDecoder {
	return &JWTDecoder{parser: jwt.NewParser()}
}

func (d *JWTDecoder) ExpiresAt(raw string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(raw, claims); err != nil {
		return time.Time{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}

// Expired reports whether now is at or past the token's expiry. Decode
// failures count as expired, so a garbage token can never pass for a live
// session. The check is monotonic in now: false strictly before the expiry
// instant, true from it onward.
func Expired(d Decoder, raw string, now time.Time) bool {
	exp, err := d.ExpiresAt(raw)
	if err != nil {
		return true
	}
	return !now.Before(exp)
}
