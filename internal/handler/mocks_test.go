package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aesthetic-cakes/internal/middleware"
	"aesthetic-cakes/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Listing(ctx context.Context, kind model.Kind, category string) (*model.Listing, error) {
	args := m.Called(ctx, kind, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Listing), args.Error(1)
}

func (m *MockCatalogService) Detail(ctx context.Context, kind model.Kind, id int) (*model.Product, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) Search(ctx context.Context, query string, limit int) (*model.SearchResponse, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SearchResponse), args.Error(1)
}

func (m *MockCatalogService) Featured(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context, sessionID uuid.UUID) (*model.CartResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartResponse), args.Error(1)
}

func (m *MockCartService) Add(ctx context.Context, sessionID uuid.UUID, key model.ProductKey) (*model.CartResponse, error) {
	args := m.Called(ctx, sessionID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartResponse), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, sessionID uuid.UUID, key model.ProductKey, quantity int) (*model.CartResponse, error) {
	args := m.Called(ctx, sessionID, key, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartResponse), args.Error(1)
}

func (m *MockCartService) Remove(ctx context.Context, sessionID uuid.UUID, key model.ProductKey) (*model.CartResponse, error) {
	args := m.Called(ctx, sessionID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartResponse), args.Error(1)
}

// MockContactService is a mock implementation of ContactService.
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, sessionID uuid.UUID, msg *model.ContactMessage) (*model.ContactResponse, error) {
	args := m.Called(ctx, sessionID, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactResponse), args.Error(1)
}

// newRequest builds a request carrying a request ID and, when session is
// not uuid.Nil, a cart session.
func newRequest(t *testing.T, method, target, body string, session uuid.UUID) *http.Request {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	ctx := middleware.WithRequestID(req.Context(), "req-test")
	if session != uuid.Nil {
		ctx = middleware.WithSessionID(ctx, session)
	}
	return req.WithContext(ctx)
}
