package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lostpaws/petfinder-system/internal/core/domain"
	"github.com/lostpaws/petfinder-system/internal/core/ports"
)

// tokenTypeVerify tags pending-registration tokens so a verification link
// cannot be replayed as a session credential (or vice versa).
const tokenTypeVerify = "verify"

// TokenService signs and verifies HS256 JWTs with a process-wide secret.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

type registrationClaims struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Phone        string `json:"phone,omitempty"`
	Name         string `json:"name,omitempty"`
	Type         string `json:"type"`
	jwt.RegisteredClaims
}

// IssueSession signs a session token carrying the user id as subject.
func (s *TokenService) IssueSession(userID string, ttl time.Duration) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// IssueRegistration signs a verify-typed token embedding the not-yet-committed
// account data.
func (s *TokenService) IssueRegistration(rc ports.RegistrationClaims, ttl time.Duration) (string, error) {
	claims := registrationClaims{
		Email:        rc.Email,
		PasswordHash: rc.PasswordHash,
		Phone:        rc.Phone,
		Name:         rc.Name,
		Type:         tokenTypeVerify,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifySession returns the subject of a valid session token. All failure
// causes collapse into domain.ErrInvalidToken.
func (s *TokenService) VerifySession(token string) (string, error) {
	claims := &sessionClaims{}
	if err := s.parse(token, claims); err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}

// VerifyRegistration returns the pending-registration payload of a valid
// verify-typed token.
func (s *TokenService) VerifyRegistration(token string) (*ports.RegistrationClaims, error) {
	claims := &registrationClaims{}
	if err := s.parse(token, claims); err != nil {
		return nil, err
	}
	if claims.Type != tokenTypeVerify {
		return nil, domain.ErrInvalidToken
	}
	return &ports.RegistrationClaims{
		Email:        claims.Email,
		PasswordHash: claims.PasswordHash,
		Phone:        claims.Phone,
		Name:         claims.Name,
	}, nil
}

func (s *TokenService) parse(token string, claims jwt.Claims) error {
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.ErrInvalidToken
	}
	return nil
}
