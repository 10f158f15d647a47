package tests

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"kitchary/internal/domain"
	"kitchary/internal/mocks"
	"kitchary/internal/service"
)

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		req           service.SignupRequest
		prepareMocks  func(users *mocks.UserRepository)
		expectedRole  string
		expectedError error
	}{
		{
			name: "success_default_role_customer",
			req:  service.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "s3cret"},
			prepareMocks: func(users *mocks.UserRepository) {
				users.On("UsernameExists", "alice").Return(false, nil).Once()
				users.On("EmailExists", "alice@example.com").Return(false, nil).Once()
				users.On("InsertUser", mock.Anything).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.User).ID = 11
				}).Return(nil).Once()
				users.On("UpsertProfile", 11, "customer").
					Return(&domain.UserProfile{ID: 1, UserID: 11, Role: "customer"}, nil).Once()
			},
			expectedRole: "customer",
		},
		{
			name: "success_explicit_admin_role",
			req:  service.SignupRequest{Username: "boss", Email: "boss@example.com", Password: "s3cret", Role: "admin"},
			prepareMocks: func(users *mocks.UserRepository) {
				users.On("UsernameExists", "boss").Return(false, nil).Once()
				users.On("EmailExists", "boss@example.com").Return(false, nil).Once()
				users.On("InsertUser", mock.Anything).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.User).ID = 12
				}).Return(nil).Once()
				users.On("UpsertProfile", 12, "admin").
					Return(&domain.UserProfile{ID: 2, UserID: 12, Role: "admin"}, nil).Once()
			},
			expectedRole: "admin",
		},
		{
			name: "error_duplicate_username",
			req:  service.SignupRequest{Username: "alice", Email: "other@example.com", Password: "s3cret"},
			prepareMocks: func(users *mocks.UserRepository) {
				users.On("UsernameExists", "alice").Return(true, nil).Once()
			},
			expectedError: service.ErrUsernameTaken,
		},
		{
			name: "error_duplicate_email",
			req:  service.SignupRequest{Username: "alice2", Email: "alice@example.com", Password: "s3cret"},
			prepareMocks: func(users *mocks.UserRepository) {
				users.On("UsernameExists", "alice2").Return(false, nil).Once()
				users.On("EmailExists", "alice@example.com").Return(true, nil).Once()
			},
			expectedError: service.ErrEmailTaken,
		},
		{
			name: "error_unknown_role",
			req:  service.SignupRequest{Username: "eve", Email: "eve@example.com", Password: "s3cret", Role: "root"},
			prepareMocks: func(users *mocks.UserRepository) {
			},
			expectedError: service.ErrInvalidRole,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			users := mocks.NewUserRepository(t)
			sessions := mocks.NewSessionStore(t)
			svc := service.NewAuthService(users, sessions)

			testCase.prepareMocks(users)

			user, err := svc.Signup(ctx, testCase.req)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.req.Username, user.Username)
			assert.NotEqual(t, testCase.req.Password, user.PasswordHash)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)

	customer := &domain.User{ID: 11, Username: "alice", PasswordHash: string(hash)}
	superuser := &domain.User{ID: 1, Username: "root", PasswordHash: string(hash), IsSuperuser: true}

	tests := []struct {
		name             string
		username         string
		password         string
		prepareMocks     func(users *mocks.UserRepository, sessions *mocks.SessionStore)
		expectedRedirect string
		expectedError    error
	}{
		{
			name:     "success_customer_lands_on_customer_dashboard",
			username: "alice",
			password: "s3cret",
			prepareMocks: func(users *mocks.UserRepository, sessions *mocks.SessionStore) {
				users.On("GetUserByUsername", "alice").Return(customer, nil).Once()
				sessions.On("Create", ctx, 11).Return("tok-1", nil).Once()
				users.On("GetProfile", 11).
					Return(&domain.UserProfile{UserID: 11, Role: "customer"}, nil).Once()
			},
			expectedRedirect: service.CustomerDashboardPath,
		},
		{
			name:     "success_admin_profile_lands_on_admin_dashboard",
			username: "alice",
			password: "s3cret",
			prepareMocks: func(users *mocks.UserRepository, sessions *mocks.SessionStore) {
				users.On("GetUserByUsername", "alice").Return(customer, nil).Once()
				sessions.On("Create", ctx, 11).Return("tok-2", nil).Once()
				users.On("GetProfile", 11).
					Return(&domain.UserProfile{UserID: 11, Role: "admin"}, nil).Once()
			},
			expectedRedirect: service.AdminDashboardPath,
		},
		{
			name:     "success_superuser_skips_profile_lookup",
			username: "root",
			password: "s3cret",
			prepareMocks: func(users *mocks.UserRepository, sessions *mocks.SessionStore) {
				users.On("GetUserByUsername", "root").Return(superuser, nil).Once()
				sessions.On("Create", ctx, 1).Return("tok-3", nil).Once()
			},
			expectedRedirect: service.AdminDashboardPath,
		},
		{
			name:     "error_wrong_password",
			username: "alice",
			password: "wrong",
			prepareMocks: func(users *mocks.UserRepository, sessions *mocks.SessionStore) {
				users.On("GetUserByUsername", "alice").Return(customer, nil).Once()
			},
			expectedError: service.ErrInvalidCredentials,
		},
		{
			name:     "error_unknown_user_same_message",
			username: "nobody",
			password: "s3cret",
			prepareMocks: func(users *mocks.UserRepository, sessions *mocks.SessionStore) {
				users.On("GetUserByUsername", "nobody").Return(nil, sql.ErrNoRows).Once()
			},
			expectedError: service.ErrInvalidCredentials,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			users := mocks.NewUserRepository(t)
			sessions := mocks.NewSessionStore(t)
			svc := service.NewAuthService(users, sessions)

			testCase.prepareMocks(users, sessions)

			result, err := svc.Login(ctx, testCase.username, testCase.password)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expectedRedirect, result.Redirect)
			assert.NotEmpty(t, result.Token)
		})
	}
}

func TestAuthService_RoleFor_RepairsMissingProfile(t *testing.T) {
	users := mocks.NewUserRepository(t)
	sessions := mocks.NewSessionStore(t)
	svc := service.NewAuthService(users, sessions)

	users.On("GetProfile", 11).Return(nil, sql.ErrNoRows).Once()
	users.On("UpsertProfile", 11, "customer").
		Return(&domain.UserProfile{ID: 3, UserID: 11, Role: "customer"}, nil).Once()

	role, err := svc.RoleFor(11, false)
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, role)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserRepository(t)
	sessions := mocks.NewSessionStore(t)
	svc := service.NewAuthService(users, sessions)

	sessions.On("Get", ctx, "tok-1").Return(11, nil).Once()
	users.On("GetUserByID", 11).Return(&domain.User{ID: 11, Username: "alice"}, nil).Once()

	user, err := svc.Authenticate(ctx, "tok-1")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	sessions.On("Get", ctx, "expired").Return(0, assert.AnError).Once()
	_, err = svc.Authenticate(ctx, "expired")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}
