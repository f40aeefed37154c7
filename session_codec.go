package localAuth

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// sessionCodec serializes the current-session record. Two encodings exist:
// plain JSON, byte-compatible with the browser application's record, and
// an HS256-signed token so a tampered record is detected at rehydration.
type sessionCodec interface {
	encode(profile UserProfile) (string, error)
	decode(raw string) (UserProfile, error)
}

func newSessionCodec(cfg SessionConfig) (sessionCodec, error) {
	switch cfg.Encoding {
	case SessionEncodingJSON, "":
		return jsonSessionCodec{}, nil
	case SessionEncodingJWT:
		if len(cfg.SigningKey) == 0 {
			return nil, errors.New("jwt session encoding requires a signing key")
		}
		return &jwtSessionCodec{key: append([]byte(nil), cfg.SigningKey...)}, nil
	default:
		return nil, fmt.Errorf("unknown session encoding %q", cfg.Encoding)
	}
}

type jsonSessionCodec struct{}

func (jsonSessionCodec) encode(profile UserProfile) (string, error) {
	raw, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("encode session record: %w", err)
	}
	return string(raw), nil
}

func (jsonSessionCodec) decode(raw string) (UserProfile, error) {
	var profile UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return UserProfile{}, fmt.Errorf("%w: session record: %v", ErrStoreCorrupt, err)
	}
	if profile.Email == "" {
		return UserProfile{}, fmt.Errorf("%w: session record missing email", ErrStoreCorrupt)
	}
	return profile, nil
}

type sessionClaims struct {
	Profile UserProfile `json:"profile"`
	jwt.RegisteredClaims
}

type jwtSessionCodec struct {
	key []byte
}

func (c *jwtSessionCodec) encode(profile UserProfile) (string, error) {
	claims := sessionClaims{
		Profile: profile,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  profile.ID,
			IssuedAt: jwt.NewNumericDate(profile.CreatedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign session record: %w", err)
	}
	return signed, nil
}

func (c *jwtSessionCodec) decode(raw string) (UserProfile, error) {
	var claims sessionClaims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.key, nil
	})
	if err != nil || !token.Valid {
		return UserProfile{}, fmt.Errorf("%w: session token: %v", ErrStoreCorrupt, err)
	}
	if claims.Profile.Email == "" {
		return UserProfile{}, fmt.Errorf("%w: session token missing profile", ErrStoreCorrupt)
	}
	return claims.Profile, nil
}
