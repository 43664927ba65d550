package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type Claims struct {
	Email string `json:"email"`

	jwtlib.RegisteredClaims
}

type Service interface {
	Issue(email string) (string, error)
	Verify(tokenString string) (Claims, error)
}

// HMACService signs and verifies HS256 tokens with a single process-wide
// secret. The secret comes from configuration at construction time.
type HMACService struct {
	secret    []byte
	expiresIn time.Duration

	now func() time.Time
}

func NewHMACService(secret string, expiresIn time.Duration) *HMACService {
	return NewHMACServiceAt(secret, expiresIn, time.Now)
}

// NewHMACServiceAt injects the clock; tests use it to pin issuance and
// verification times.
func NewHMACServiceAt(secret string, expiresIn time.Duration, now func() time.Time) *HMACService {
	if now == nil {
		now = time.Now
	}
	return &HMACService{
		secret:    []byte(secret),
		expiresIn: expiresIn,
		now:       now,
	}
}

func (s *HMACService) Issue(email string) (string, error) {
	if len(s.secret) == 0 || s.expiresIn <= 0 {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		Email: email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.expiresIn)),
			Subject:   email,
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

func (s *HMACService) Verify(tokenString string) (Claims, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if c.Email == "" {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}
