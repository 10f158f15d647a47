package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kitchary/internal/domain"
)

// ---- SessionStore ----

type SessionStore struct {
	mock.Mock
}

func NewSessionStore(t mockTestingT) *SessionStore {
	m := &SessionStore{}
	register(t, &m.Mock, m)
	return m
}

func (m *SessionStore) Create(ctx context.Context, userID int) (string, error) {
	ret := m.Called(ctx, userID)
	return ret.String(0), ret.Error(1)
}

func (m *SessionStore) Get(ctx context.Context, token string) (int, error) {
	ret := m.Called(ctx, token)
	return ret.Int(0), ret.Error(1)
}

func (m *SessionStore) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

// ---- EventPublisher ----

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t mockTestingT) *EventPublisher {
	m := &EventPublisher{}
	register(t, &m.Mock, m)
	return m
}

func (m *EventPublisher) PublishEvent(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}
