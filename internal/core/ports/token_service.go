package ports

import "time"

// RegistrationClaims is the pending-registration payload carried inside a
// verification token. The password is embedded pre-hashed so no plaintext
// crosses the pending-registration boundary, and nothing is persisted until
// the token comes back.
type RegistrationClaims struct {
	Email        string
	PasswordHash string
	Phone        string
	Name         string
}

// TokenService signs and verifies the time-bound bearer tokens used for
// sessions and pending registrations. Verification failures are deliberately
// undifferentiated: expired, malformed, tampered, and wrong-type tokens all
// surface as domain.ErrInvalidToken.
type TokenService interface {
	IssueSession(userID string, ttl time.Duration) (string, error)
	IssueRegistration(claims RegistrationClaims, ttl time.Duration) (string, error)

	// VerifySession returns the subject user id of a valid session token.
	VerifySession(token string) (string, error)
	VerifyRegistration(token string) (*RegistrationClaims, error)
}
