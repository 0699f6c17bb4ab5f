package ports

import "context"

// RegisterInput carries the fields of a registration request.
// Shape constraints (email format, password length, phone pattern) are
// enforced at the transport boundary before this DTO is built.
type RegisterInput struct {
	Email    string
	Password string
	Phone    string
	Name     string
}

// TokenPair is the access/refresh pair issued on login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserProfile is the public projection of a user record.
type UserProfile struct {
	Name  string
	Date  string // join date formatted dd.mm.yyyy
	Email string
	Phone string
}

// AuthService implements registration with email verification, session
// issuance and refresh, and profile updates.
type AuthService interface {
	// Register validates availability of the email, issues a pending
	// registration token and hands it to the mailer. No user row is written.
	Register(ctx context.Context, input RegisterInput) error
	// Verify consumes a registration token and materializes the user row.
	// Replaying the link after success is a no-op success.
	Verify(ctx context.Context, token string) error

	Login(ctx context.Context, email, password string) (*TokenPair, error)
	// Refresh mints a new access token for the refresh token's subject.
	// The refresh token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	GetUser(ctx context.Context, userID string) (*UserProfile, error)

	UpdateName(ctx context.Context, userID, name string) error
	UpdateEmail(ctx context.Context, userID, email string) error
	UpdatePhone(ctx context.Context, userID, phone string) error
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
