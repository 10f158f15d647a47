package service

import (
	"context"

	"kitchary/internal/domain"
)

type AuthServiceInterface interface {
	Signup(ctx context.Context, req SignupRequest) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	LandingFor(userID int, isSuperuser bool) (string, error)
	RoleFor(userID int, isSuperuser bool) (string, error)
}

type MenuServiceInterface interface {
	ListItems() ([]domain.MenuItem, error)
	CreateItem(item *domain.MenuItem) error
	SetItemImage(itemID int, imageURL string) error
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, userID int, quantities map[int]int) (*domain.Order, error)
	ListOrders(userID int) ([]domain.Order, error)
	GetOrder(userID, orderID int) (*domain.Order, error)
	PaymentForOrder(userID, orderID int) (*domain.Order, *domain.Payment, error)
	CompletePayment(ctx context.Context, userID, orderID int) (*domain.Payment, error)
	GetPayment(userID, paymentID int) (*domain.Payment, error)
	ListPayments(userID int) ([]domain.Payment, error)
}

type DashboardServiceInterface interface {
	Summary() (domain.DashboardSummary, error)
}

// UserRepository persists accounts and their role profiles.
type UserRepository interface {
	InsertUser(user *domain.User) error
	GetUserByUsername(username string) (*domain.User, error)
	GetUserByID(id int) (*domain.User, error)
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
	GetProfile(userID int) (*domain.UserProfile, error)
	UpsertProfile(userID int, role string) (*domain.UserProfile, error)
}

type MenuRepository interface {
	ListMenuItems() ([]domain.MenuItem, error)
	GetMenuItem(id int) (*domain.MenuItem, error)
	InsertMenuItem(item *domain.MenuItem) error
	UpdateMenuItemImage(id int, imageURL string) (bool, error)
}

// OrderRepository persists orders. CreateOrder writes the order, its items
// and the pending payment in a single transaction.
type OrderRepository interface {
	CreateOrder(userID int, total float64, items []domain.OrderItem) (*domain.Order, *domain.Payment, error)
	ListUserOrders(userID int) ([]domain.Order, error)
	GetUserOrder(userID, orderID int) (*domain.Order, error)
}

type PaymentRepository interface {
	GetPaymentByOrder(orderID, userID int) (*domain.Payment, error)
	MarkPaymentCompleted(paymentID int, amount float64) (*domain.Payment, error)
	InsertCompletedPayment(orderID, userID int, amount float64) (*domain.Payment, error)
	GetUserPayment(userID, paymentID int) (*domain.Payment, error)
	ListUserPayments(userID int) ([]domain.Payment, error)
}

type StatsRepository interface {
	CountOrders() (int, error)
	CompletedRevenue() (float64, error)
	CountPendingPayments() (int, error)
	CountMenuItems() (int, error)
	RecentOrders(limit int) ([]domain.Order, error)
}

type SessionStore interface {
	Create(ctx context.Context, userID int) (string, error)
	Get(ctx context.Context, token string) (int, error)
	Delete(ctx context.Context, token string) error
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ AuthServiceInterface      = (*AuthService)(nil)
	_ MenuServiceInterface      = (*MenuService)(nil)
	_ OrderServiceInterface     = (*OrderService)(nil)
	_ DashboardServiceInterface = (*DashboardService)(nil)
)
