package mocks

import (
	"github.com/stretchr/testify/mock"

	"kitchary/internal/domain"
)

type mockTestingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(t mockTestingT, m *mock.Mock, asserter interface{ AssertExpectations(t mock.TestingT) bool }) {
	m.Test(t)
	t.Cleanup(func() { asserter.AssertExpectations(t) })
}

// ---- UserRepository ----

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t mockTestingT) *UserRepository {
	m := &UserRepository{}
	register(t, &m.Mock, m)
	return m
}

func (m *UserRepository) InsertUser(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *UserRepository) GetUserByUsername(username string) (*domain.User, error) {
	ret := m.Called(username)
	user, _ := ret.Get(0).(*domain.User)
	return user, ret.Error(1)
}

func (m *UserRepository) GetUserByID(id int) (*domain.User, error) {
	ret := m.Called(id)
	user, _ := ret.Get(0).(*domain.User)
	return user, ret.Error(1)
}

func (m *UserRepository) UsernameExists(username string) (bool, error) {
	ret := m.Called(username)
	return ret.Bool(0), ret.Error(1)
}

func (m *UserRepository) EmailExists(email string) (bool, error) {
	ret := m.Called(email)
	return ret.Bool(0), ret.Error(1)
}

func (m *UserRepository) GetProfile(userID int) (*domain.UserProfile, error) {
	ret := m.Called(userID)
	profile, _ := ret.Get(0).(*domain.UserProfile)
	return profile, ret.Error(1)
}

func (m *UserRepository) UpsertProfile(userID int, role string) (*domain.UserProfile, error) {
	ret := m.Called(userID, role)
	profile, _ := ret.Get(0).(*domain.UserProfile)
	return profile, ret.Error(1)
}

// ---- MenuRepository ----

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t mockTestingT) *MenuRepository {
	m := &MenuRepository{}
	register(t, &m.Mock, m)
	return m
}

func (m *MenuRepository) ListMenuItems() ([]domain.MenuItem, error) {
	ret := m.Called()
	items, _ := ret.Get(0).([]domain.MenuItem)
	return items, ret.Error(1)
}

func (m *MenuRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	ret := m.Called(id)
	item, _ := ret.Get(0).(*domain.MenuItem)
	return item, ret.Error(1)
}

func (m *MenuRepository) InsertMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuRepository) UpdateMenuItemImage(id int, imageURL string) (bool, error) {
	ret := m.Called(id, imageURL)
	return ret.Bool(0), ret.Error(1)
}

// ---- OrderRepository ----

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t mockTestingT) *OrderRepository {
	m := &OrderRepository{}
	register(t, &m.Mock, m)
	return m
}

func (m *OrderRepository) CreateOrder(userID int, total float64, items []domain.OrderItem) (*domain.Order, *domain.Payment, error) {
	ret := m.Called(userID, total, items)
	order, _ := ret.Get(0).(*domain.Order)
	payment, _ := ret.Get(1).(*domain.Payment)
	return order, payment, ret.Error(2)
}

func (m *OrderRepository) ListUserOrders(userID int) ([]domain.Order, error) {
	ret := m.Called(userID)
	orders, _ := ret.Get(0).([]domain.Order)
	return orders, ret.Error(1)
}

func (m *OrderRepository) GetUserOrder(userID, orderID int) (*domain.Order, error) {
	ret := m.Called(userID, orderID)
	order, _ := ret.Get(0).(*domain.Order)
	return order, ret.Error(1)
}

// ---- PaymentRepository ----

type PaymentRepository struct {
	mock.Mock
}

func NewPaymentRepository(t mockTestingT) *PaymentRepository {
	m := &PaymentRepository{}
	register(t, &m.Mock, m)
	return m
}

func (m *PaymentRepository) GetPaymentByOrder(orderID, userID int) (*domain.Payment, error) {
	ret := m.Called(orderID, userID)
	payment, _ := ret.Get(0).(*domain.Payment)
	return payment, ret.Error(1)
}

func (m *PaymentRepository) MarkPaymentCompleted(paymentID int, amount float64) (*domain.Payment, error) {
	ret := m.Called(paymentID, amount)
	payment, _ := ret.Get(0).(*domain.Payment)
	return payment, ret.Error(1)
}

func (m *PaymentRepository) InsertCompletedPayment(orderID, userID int, amount float64) (*domain.Payment, error) {
	ret := m.Called(orderID, userID, amount)
	payment, _ := ret.Get(0).(*domain.Payment)
	return payment, ret.Error(1)
}

func (m *PaymentRepository) GetUserPayment(userID, paymentID int) (*domain.Payment, error) {
	ret := m.Called(userID, paymentID)
	payment, _ := ret.Get(0).(*domain.Payment)
	return payment, ret.Error(1)
}

func (m *PaymentRepository) ListUserPayments(userID int) ([]domain.Payment, error) {
	ret := m.Called(userID)
	payments, _ := ret.Get(0).([]domain.Payment)
	return payments, ret.Error(1)
}

// ---- StatsRepository ----

type StatsRepository struct {
	mock.Mock
}

func NewStatsRepository(t mockTestingT) *StatsRepository {
	m := &StatsRepository{}
	register(t, &m.Mock, m)
	return m
}

func (m *StatsRepository) CountOrders() (int, error) {
	ret := m.Called()
	return ret.Int(0), ret.Error(1)
}

func (m *StatsRepository) CompletedRevenue() (float64, error) {
	ret := m.Called()
	revenue, _ := ret.Get(0).(float64)
	return revenue, ret.Error(1)
}

func (m *StatsRepository) CountPendingPayments() (int, error) {
	ret := m.Called()
	return ret.Int(0), ret.Error(1)
}

func (m *StatsRepository) CountMenuItems() (int, error) {
	ret := m.Called()
	return ret.Int(0), ret.Error(1)
}

func (m *StatsRepository) RecentOrders(limit int) ([]domain.Order, error) {
	ret := m.Called(limit)
	orders, _ := ret.Get(0).([]domain.Order)
	return orders, ret.Error(1)
}
