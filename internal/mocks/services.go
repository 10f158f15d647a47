package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kitchary/internal/domain"
	"kitchary/internal/service"
)

// ---- AuthServiceInterface ----

type AuthServiceInterface struct {
	mock.Mock
}

func NewAuthServiceInterface(t mockTestingT) *AuthServiceInterface {
	m := &AuthServiceInterface{}
	register(t, &m.Mock, m)
	return m
}

func (m *AuthServiceInterface) Signup(ctx context.Context, req service.SignupRequest) (*domain.User, error) {
	ret := m.Called(ctx, req)
	user, _ := ret.Get(0).(*domain.User)
	return user, ret.Error(1)
}

func (m *AuthServiceInterface) Login(ctx context.Context, username, password string) (*service.LoginResult, error) {
	ret := m.Called(ctx, username, password)
	result, _ := ret.Get(0).(*service.LoginResult)
	return result, ret.Error(1)
}

func (m *AuthServiceInterface) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *AuthServiceInterface) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	ret := m.Called(ctx, token)
	user, _ := ret.Get(0).(*domain.User)
	return user, ret.Error(1)
}

func (m *AuthServiceInterface) LandingFor(userID int, isSuperuser bool) (string, error) {
	ret := m.Called(userID, isSuperuser)
	return ret.String(0), ret.Error(1)
}

func (m *AuthServiceInterface) RoleFor(userID int, isSuperuser bool) (string, error) {
	ret := m.Called(userID, isSuperuser)
	return ret.String(0), ret.Error(1)
}

// ---- MenuServiceInterface ----

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t mockTestingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	register(t, &m.Mock, m)
	return m
}

func (m *MenuServiceInterface) ListItems() ([]domain.MenuItem, error) {
	ret := m.Called()
	items, _ := ret.Get(0).([]domain.MenuItem)
	return items, ret.Error(1)
}

func (m *MenuServiceInterface) CreateItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuServiceInterface) SetItemImage(itemID int, imageURL string) error {
	return m.Called(itemID, imageURL).Error(0)
}

// ---- OrderServiceInterface ----

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t mockTestingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	register(t, &m.Mock, m)
	return m
}

func (m *OrderServiceInterface) PlaceOrder(ctx context.Context, userID int, quantities map[int]int) (*domain.Order, error) {
	ret := m.Called(ctx, userID, quantities)
	order, _ := ret.Get(0).(*domain.Order)
	return order, ret.Error(1)
}

func (m *OrderServiceInterface) ListOrders(userID int) ([]domain.Order, error) {
	ret := m.Called(userID)
	orders, _ := ret.Get(0).([]domain.Order)
	return orders, ret.Error(1)
}

func (m *OrderServiceInterface) GetOrder(userID, orderID int) (*domain.Order, error) {
	ret := m.Called(userID, orderID)
	order, _ := ret.Get(0).(*domain.Order)
	return order, ret.Error(1)
}

func (m *OrderServiceInterface) PaymentForOrder(userID, orderID int) (*domain.Order, *domain.Payment, error) {
	ret := m.Called(userID, orderID)
	order, _ := ret.Get(0).(*domain.Order)
	payment, _ := ret.Get(1).(*domain.Payment)
	return order, payment, ret.Error(2)
}

func (m *OrderServiceInterface) CompletePayment(ctx context.Context, userID, orderID int) (*domain.Payment, error) {
	ret := m.Called(ctx, userID, orderID)
	payment, _ := ret.Get(0).(*domain.Payment)
	return payment, ret.Error(1)
}

func (m *OrderServiceInterface) GetPayment(userID, paymentID int) (*domain.Payment, error) {
	ret := m.Called(userID, paymentID)
	payment, _ := ret.Get(0).(*domain.Payment)
	return payment, ret.Error(1)
}

func (m *OrderServiceInterface) ListPayments(userID int) ([]domain.Payment, error) {
	ret := m.Called(userID)
	payments, _ := ret.Get(0).([]domain.Payment)
	return payments, ret.Error(1)
}

// ---- DashboardServiceInterface ----

type DashboardServiceInterface struct {
	mock.Mock
}

func NewDashboardServiceInterface(t mockTestingT) *DashboardServiceInterface {
	m := &DashboardServiceInterface{}
	register(t, &m.Mock, m)
	return m
}

func (m *DashboardServiceInterface) Summary() (domain.DashboardSummary, error) {
	ret := m.Called()
	summary, _ := ret.Get(0).(domain.DashboardSummary)
	return summary, ret.Error(1)
}
