package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wheelhouse-backend/internal/api/rest"
	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/security"
	"wheelhouse-backend/internal/service"
)

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) CreateRental(ctx context.Context, input service.CreateRentalInput) (*domain.Rental, []domain.Installment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var installments []domain.Installment
	if args.Get(1) != nil {
		installments = args.Get(1).([]domain.Installment)
	}
	return args.Get(0).(*domain.Rental), installments, args.Error(2)
}
func (m *MockRentalService) GetRental(ctx context.Context, userID int32, isStaff bool, rentalID int32) (*domain.Rental, error) {
	args := m.Called(ctx, userID, isStaff, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) ListRentals(ctx context.Context, userID int32, isStaff bool, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, userID, isStaff, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}
func (m *MockRentalService) Confirm(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) Start(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) Complete(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) Cancel(ctx context.Context, userID int32, isStaff bool, rentalID int32) (*domain.Rental, error) {
	args := m.Called(ctx, userID, isStaff, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) Extend(ctx context.Context, rentalID int32, newEnd time.Time) (*domain.Rental, *domain.Installment, error) {
	args := m.Called(ctx, rentalID, newEnd)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var inst *domain.Installment
	if args.Get(1) != nil {
		inst = args.Get(1).(*domain.Installment)
	}
	return args.Get(0).(*domain.Rental), inst, args.Error(2)
}
func (m *MockRentalService) ListInstallments(ctx context.Context, userID int32, isStaff bool, rentalID int32) ([]domain.Installment, error) {
	args := m.Called(ctx, userID, isStaff, rentalID)
	return args.Get(0).([]domain.Installment), args.Error(1)
}
func (m *MockRentalService) PayInstallment(ctx context.Context, installmentID int32) error {
	args := m.Called(ctx, installmentID)
	return args.Error(0)
}

func newTestRouter(t *testing.T, rentalSvc service.RentalService) (http.Handler, string, string) {
	t.Helper()
	tokens := security.NewTokenManager("test-secret", 0, 0)

	staffToken, err := tokens.GenerateAccessToken(1, "staff@example.com", true)
	assert.NoError(t, err)
	customerToken, err := tokens.GenerateAccessToken(3, "renter@example.com", false)
	assert.NoError(t, err)

	router := rest.NewRouter(rest.RouterDeps{
		Tokens:    tokens,
		RentalSvc: rentalSvc,
	})
	return router, staffToken, customerToken
}

func TestRentalRoutes_AuthRequired(t *testing.T) {
	router, _, _ := newTestRouter(t, new(MockRentalService))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRentalTransitions_StaffOnly(t *testing.T) {
	svc := new(MockRentalService)
	router, _, customerToken := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals/10/confirm", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	svc.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
}

func TestCancelRental_ReachableByRenter(t *testing.T) {
	svc := new(MockRentalService)
	router, _, customerToken := newTestRouter(t, svc)

	svc.On("Cancel", mock.Anything, int32(3), false, int32(10)).
		Return(&domain.Rental{ID: 10, UserID: 3, Status: domain.RentalStatusCancelled}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals/10/cancel", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertCalled(t, "Cancel", mock.Anything, int32(3), false, int32(10))
}

func TestConfirmRental_GuardFailureMapsTo409(t *testing.T) {
	svc := new(MockRentalService)
	svc.On("Confirm", mock.Anything, int32(10)).
		Return(nil, domain.NewInvalidTransition(domain.RentalStatusActive, "confirm", "only a pending rental can be confirmed, current status is active"))
	router, staffToken, _ := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals/10/confirm", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "pending")
}

func TestCreateRental_CustomerTokenSetsNonStaffInput(t *testing.T) {
	svc := new(MockRentalService)
	svc.On("CreateRental", mock.Anything, mock.MatchedBy(func(input service.CreateRentalInput) bool {
		return !input.Staff && input.UserID == 3
	})).Return(&domain.Rental{ID: 10, UserID: 3, Status: domain.RentalStatusPending}, []domain.Installment{}, nil)
	router, _, customerToken := newTestRouter(t, svc)

	payload, _ := json.Marshal(map[string]any{
		"vehicle_id": 2,
		"start_date": "2025-03-01",
		"end_date":   "2025-03-16",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+customerToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreateRental_MissingDateMapsTo400(t *testing.T) {
	svc := new(MockRentalService)
	router, _, customerToken := newTestRouter(t, svc)

	payload, _ := json.Marshal(map[string]any{"vehicle_id": 2, "start_date": "2025-03-01"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+customerToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateRental", mock.Anything, mock.Anything)
}

func TestStartRental_InventoryExhaustedMapsTo409(t *testing.T) {
	svc := new(MockRentalService)
	svc.On("Start", mock.Anything, int32(10)).Return(nil, domain.ErrInsufficientInventory)
	router, staffToken, _ := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals/10/start", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
