package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"kitchary/internal/domain"
)

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRole        = errors.New("role must be admin or customer")
	ErrSessionNotFound    = errors.New("session not found")
)

const (
	AdminDashboardPath    = "/dashboard/admin/"
	CustomerDashboardPath = "/dashboard/customer/"
)

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginResult struct {
	User     *domain.User
	Token    string
	Redirect string
}

type AuthService struct {
	users    UserRepository
	sessions SessionStore
}

func NewAuthService(users UserRepository, sessions SessionStore) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Signup creates the account and its role profile in one explicit workflow
// step. The role defaults to customer when absent or empty.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*domain.User, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if role != domain.RoleAdmin && role != domain.RoleCustomer {
		return nil, ErrInvalidRole
	}

	if taken, err := s.users.UsernameExists(req.Username); err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	} else if taken {
		return nil, ErrUsernameTaken
	}

	if taken, err := s.users.EmailExists(req.Email); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	} else if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.InsertUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := s.users.UpsertProfile(user.ID, role); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return user, nil
}

// Login verifies the credentials, mints a session and resolves the role-based
// landing page. Unknown usernames and bad passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetUserByUsername(username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	redirect, err := s.LandingFor(user.ID, user.IsSuperuser)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token, Redirect: redirect}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves a session token back to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	user, err := s.users.GetUserByID(userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// LandingFor dispatches by role: superusers and admin profiles land on the
// admin dashboard, everyone else on the customer dashboard.
func (s *AuthService) LandingFor(userID int, isSuperuser bool) (string, error) {
	role, err := s.RoleFor(userID, isSuperuser)
	if err != nil {
		return "", err
	}
	if role == domain.RoleAdmin {
		return AdminDashboardPath, nil
	}
	return CustomerDashboardPath, nil
}

// RoleFor resolves the user's effective role. A missing profile is repaired
// on the spot as customer; profile absence is never fatal.
func (s *AuthService) RoleFor(userID int, isSuperuser bool) (string, error) {
	if isSuperuser {
		return domain.RoleAdmin, nil
	}

	profile, err := s.users.GetProfile(userID)
	if errors.Is(err, sql.ErrNoRows) {
		profile, err = s.users.UpsertProfile(userID, domain.RoleCustomer)
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve profile: %w", err)
	}
	return profile.Role, nil
}
