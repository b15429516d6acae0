package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"estatehub/internal/adapters/persistence/models"
	"estatehub/internal/adapters/persistence/repositories"
	"estatehub/internal/config"
	"estatehub/internal/pkg/jwt"
	"estatehub/internal/pkg/mailer"
	"estatehub/internal/pkg/password"
)

// Account flow errors. Handlers map these to stable response codes.
var (
	ErrInvalidUserType         = errors.New("user type must be 'individual' or 'agent'")
	ErrMissingOrganizationName = errors.New("organization name is required for agents")
	ErrMissingINN              = errors.New("inn is required for agents")
	ErrPasswordMismatch        = errors.New("passwords do not match")
	ErrEmailExists             = errors.New("a user with this email already exists")
	ErrPhoneExists             = errors.New("a user with this phone already exists")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidToken            = errors.New("token is invalid")
	ErrTokenExpired            = errors.New("token has expired")
	ErrResetTokenInvalid       = errors.New("password reset token is invalid or expired")
	ErrInvalidCurrentPassword  = errors.New("current password is incorrect")
	ErrEmailDeliveryFailed     = errors.New("failed to send email")
)

// WeakPasswordError wraps the policy violation so the handler can show
// the concrete reason while still matching on one sentinel.
type WeakPasswordError struct {
	Reason error
}

func (e *WeakPasswordError) Error() string { return e.Reason.Error() }
func (e *WeakPasswordError) Unwrap() error { return e.Reason }

// AuthService handles registration, login and token flows
type AuthService struct {
	userRepo repositories.UserRepository
	mail     mailer.Mailer
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, mail mailer.Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		mail:     mail,
		cfg:      cfg,
	}
}

// RegisterInput carries the registration form
type RegisterInput struct {
	UserType         string  `json:"user_type"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Phone            *string `json:"phone"`
	Password1        string  `json:"password1"`
	Password2        string  `json:"password2"`
	OrganizationName string  `json:"organization_name"`
	INN              string  `json:"inn"`
}

// AuthResponse bundles the signed tokens with the user projection
type AuthResponse struct {
	User         *models.UserResponse `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
}

// Register validates the form and creates the user. Validation order is
// fixed: user type, agent-only fields, password equality, password
// strength, email uniqueness, then phone uniqueness.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	if input.UserType == "" {
		input.UserType = models.UserTypeIndividual
	}
	if input.UserType != models.UserTypeIndividual && input.UserType != models.UserTypeAgent {
		return nil, ErrInvalidUserType
	}
	if input.UserType == models.UserTypeAgent {
		if input.OrganizationName == "" {
			return nil, ErrMissingOrganizationName
		}
		if input.INN == "" {
			return nil, ErrMissingINN
		}
	}
	if input.Password1 != input.Password2 {
		return nil, ErrPasswordMismatch
	}
	if err := password.Validate(input.Password1); err != nil {
		return nil, &WeakPasswordError{Reason: err}
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailExists
	}
	if input.Phone != nil && *input.Phone != "" {
		exists, err = s.userRepo.ExistsByPhone(ctx, *input.Phone)
		if err != nil {
			return nil, fmt.Errorf("failed to check phone: %w", err)
		}
		if exists {
			return nil, ErrPhoneExists
		}
	}

	hashed, err := password.Hash(input.Password1)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    input.Email,
		Password: hashed,
		UserType: input.UserType,
		FullName: input.FullName,
	}
	if input.Phone != nil && *input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.UserType == models.UserTypeAgent {
		user.OrganizationName = input.OrganizationName
		user.INN = input.INN
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the pre-checks and
		// surface at commit time as a duplicate key. Re-check to name
		// the conflicting field instead of parsing driver messages.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.resolveDuplicate(ctx, input)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.buildAuthResponse(user)
}

func (s *AuthService) resolveDuplicate(ctx context.Context, input RegisterInput) error {
	if exists, err := s.userRepo.ExistsByEmail(ctx, input.Email); err == nil && exists {
		return ErrEmailExists
	}
	if input.Phone != nil && *input.Phone != "" {
		if exists, err := s.userRepo.ExistsByPhone(ctx, *input.Phone); err == nil && exists {
			return ErrPhoneExists
		}
	}
	return ErrEmailExists
}

// Login verifies credentials. Unknown email and wrong password collapse
// into the same error so the endpoint cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, pass string) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !password.Verify(pass, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

// Refresh exchanges a valid refresh token for a new token pair. Old
// refresh tokens stay valid until they expire on their own.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.Verify(refreshToken, jwt.KindRefresh, s.cfg.JWT.Secret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return s.buildAuthResponse(user)
}

// RequestPasswordReset emails a reset link. An unknown email returns
// success without sending anything, so the endpoint does not reveal
// which addresses are registered.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	token, err := jwt.IssuePasswordResetToken(user.ID, user.Email, s.cfg.JWT.Secret, s.cfg.JWT.ResetTokenHours)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	link := fmt.Sprintf("%s/password-reset/confirm?token=%s", s.cfg.FrontendURL, token)
	body := fmt.Sprintf(
		"You requested a password reset.\n\nFollow the link to choose a new password:\n%s\n\nThe link is valid for %d hours. If you did not request this, ignore this message.",
		link, s.cfg.JWT.ResetTokenHours,
	)
	if err := s.mail.Send(user.Email, "Password reset", body); err != nil {
		log.Printf("❌ Password reset mail to %s failed: %v", user.Email, err)
		return ErrEmailDeliveryFailed
	}
	return nil
}

// ConfirmPasswordReset sets a new password from a reset token. The
// token must carry the email it was issued for and still match a live
// user.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, pass1, pass2 string) error {
	claims, err := jwt.Verify(token, jwt.KindPasswordReset, s.cfg.JWT.Secret)
	if err != nil {
		return ErrResetTokenInvalid
	}
	if claims.Email == "" {
		return ErrResetTokenInvalid
	}

	user, err := s.userRepo.GetByIDAndEmail(ctx, claims.UserID, claims.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetTokenInvalid
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	if pass1 != pass2 {
		return ErrPasswordMismatch
	}
	if err := password.Validate(pass1); err != nil {
		return &WeakPasswordError{Reason: err}
	}

	hashed, err := password.Hash(pass1)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// ChangePassword updates the password of an authenticated user after
// re-checking the current one.
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, current, new1, new2 string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	if !password.Verify(current, user.Password) {
		return ErrInvalidCurrentPassword
	}
	if new1 != new2 {
		return ErrPasswordMismatch
	}
	if err := password.Validate(new1); err != nil {
		return &WeakPasswordError{Reason: err}
	}

	hashed, err := password.Hash(new1)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// Authenticate resolves an access token to a live user row. Any
// failure returns a nil user; the caller answers with one uniform
// unauthorized response and never reveals the reason.
func (s *AuthService) Authenticate(ctx context.Context, token string) *models.User {
	claims, err := jwt.Verify(token, jwt.KindAccess, s.cfg.JWT.Secret)
	if err != nil {
		return nil
	}
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil
	}
	return user
}

func (s *AuthService) buildAuthResponse(user *models.User) (*AuthResponse, error) {
	access, err := jwt.IssueAccessToken(user.ID, s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, err := jwt.IssueRefreshToken(user.ID, s.cfg.JWT.Secret, s.cfg.JWT.RefreshDays)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return &AuthResponse{
		User:         user.ToResponse(),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
