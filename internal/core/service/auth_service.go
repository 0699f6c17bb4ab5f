package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lostpaws/petfinder-system/internal/api/metrics"
	"github.com/lostpaws/petfinder-system/internal/core/domain"
	"github.com/lostpaws/petfinder-system/internal/core/ports"
)

// defaultNames is the pool used when a registrant supplies no display name.
// A random 1-999 suffix is appended, e.g. "Luna42".
var defaultNames = []string{"Buddy", "Luna", "Max", "Bella", "Rocky"}

// AuthService implements registration with deferred account creation,
// cookie-session issuance, and profile updates.
type AuthService struct {
	users      ports.UserRepository
	tokens     ports.TokenService
	mailer     ports.Mailer
	accessTTL  time.Duration
	refreshTTL time.Duration
	verifyTTL  time.Duration
	logger     zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tokens ports.TokenService,
	mailer ports.Mailer,
	accessTTL, refreshTTL, verifyTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 5 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	if verifyTTL <= 0 {
		verifyTTL = 30 * time.Minute
	}
	return &AuthService{
		users:      users,
		tokens:     tokens,
		mailer:     mailer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		verifyTTL:  verifyTTL,
		logger:     logger,
	}
}

// Register checks email availability, then issues a pending-registration token
// and hands it to the mailer. The user row is only written by Verify, so an
// abandoned registration leaves no trace.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		metrics.RegistrationsTotal.WithLabelValues("duplicate_email").Inc()
		return domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("register: hash password: %w", err)
	}

	name := input.Name
	if name == "" {
		name = fmt.Sprintf("%s%d", defaultNames[rand.Intn(len(defaultNames))], rand.Intn(999)+1)
	}

	token, err := s.tokens.IssueRegistration(ports.RegistrationClaims{
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Name:         name,
	}, s.verifyTTL)
	if err != nil {
		return fmt.Errorf("register: issue token: %w", err)
	}

	if err := s.mailer.SendVerification(ctx, ports.VerificationMail{
		To:    input.Email,
		Name:  name,
		Token: token,
	}); err != nil {
		return fmt.Errorf("register: send mail: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues("queued").Inc()
	s.logger.Info().Str("email", input.Email).Msg("verification mail queued")
	return nil
}

// Verify consumes a registration token and creates the user row with
// is_verified set. Replaying a link after success is a no-op success: the
// email already resolving to a user, or the insert losing a duplicate-key
// race, both count as completed.
func (s *AuthService) Verify(ctx context.Context, token string) error {
	claims, err := s.tokens.VerifyRegistration(token)
	if err != nil {
		metrics.VerificationsTotal.WithLabelValues("invalid_token").Inc()
		return err
	}

	if _, err := s.users.FindByEmail(ctx, claims.Email); err == nil {
		metrics.VerificationsTotal.WithLabelValues("replayed").Inc()
		s.logger.Debug().Str("email", claims.Email).Msg("verification replayed, account exists")
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("verify: %w", err)
	}

	user := &domain.User{
		Email:        claims.Email,
		PasswordHash: claims.PasswordHash,
		Phone:        claims.Phone,
		Name:         claims.Name,
		Role:         domain.RoleUser,
		IsVerified:   true,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			// Lost the race with a concurrent verification of the same email.
			metrics.VerificationsTotal.WithLabelValues("replayed").Inc()
			return nil
		}
		return fmt.Errorf("verify: create user: %w", err)
	}

	metrics.VerificationsTotal.WithLabelValues("created").Inc()
	s.logger.Info().Str("email", claims.Email).Msg("user verified and created")
	return nil
}

// Login validates credentials and issues an access/refresh token pair.
// Unknown email and wrong password collapse into one error so the response
// does not leak which of the two failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsVerified {
		metrics.LoginsTotal.WithLabelValues("not_verified").Inc()
		return nil, domain.ErrNotVerified
	}

	access, err := s.tokens.IssueSession(user.ID, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("login: issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueSession(user.ID, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("login: issue refresh token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh mints a new access token for the refresh token's subject. The
// refresh token itself is not rotated and stays usable until its own expiry.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.tokens.VerifySession(refreshToken)
	if err != nil {
		return "", err
	}
	return s.tokens.IssueSession(userID, s.accessTTL)
}

// GetUser returns the public projection of the account.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*ports.UserProfile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ports.UserProfile{
		Name:  user.Name,
		Date:  user.CreatedAt.Format("02.01.2006"),
		Email: user.Email,
		Phone: user.Phone,
	}, nil
}

func (s *AuthService) UpdateName(ctx context.Context, userID, name string) error {
	return s.users.UpdateName(ctx, userID, name)
}

// UpdateEmail changes the account email unless another account holds it.
func (s *AuthService) UpdateEmail(ctx context.Context, userID, email string) error {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing.ID != userID {
		return domain.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("update email: %w", err)
	}
	return s.users.UpdateEmail(ctx, userID, email)
}

func (s *AuthService) UpdatePhone(ctx context.Context, userID, phone string) error {
	return s.users.UpdatePhone(ctx, userID, phone)
}

// UpdatePassword re-hashes after checking the current password.
func (s *AuthService) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return s.users.UpdatePasswordHash(ctx, userID, string(hash))
}
