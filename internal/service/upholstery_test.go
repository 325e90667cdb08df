package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wheelhouse-backend/internal/domain"
	"wheelhouse-backend/internal/service"
)

func newUpholsteryFixture() (*MockUpholsteryRepo, service.UpholsteryService) {
	repo := new(MockUpholsteryRepo)
	noteRepo := new(MockNotificationRepo)
	noteRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	return repo, service.NewUpholsteryService(repo, service.NewNotifier(noteRepo))
}

func TestCreateBooking_SnapshotsQuote(t *testing.T) {
	repo, svc := newUpholsteryFixture()

	repo.On("GetMaterialByID", mock.Anything, int32(1)).
		Return(&domain.UpholsteryMaterial{ID: 1, Name: "Leather", Price: decimal.RequireFromString("120.00")}, nil)
	repo.On("GetTypeByID", mock.Anything, int32(2)).
		Return(&domain.UpholsteryType{ID: 2, Name: "Full reupholstery", BasePrice: decimal.RequireFromString("480.00"), Available: true}, nil)
	repo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*domain.UpholsteryBooking")).Return(nil)

	scheduled := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	booking, err := svc.CreateBooking(context.Background(), 3, 1, 2, "2019 Ford F-150, front seats", scheduled)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.True(t, booking.QuotedPrice.Equal(decimal.RequireFromString("600.00")))
}

func TestCreateBooking_RejectsUnavailableType(t *testing.T) {
	repo, svc := newUpholsteryFixture()

	repo.On("GetMaterialByID", mock.Anything, int32(1)).
		Return(&domain.UpholsteryMaterial{ID: 1, Price: decimal.RequireFromString("120.00")}, nil)
	repo.On("GetTypeByID", mock.Anything, int32(2)).
		Return(&domain.UpholsteryType{ID: 2, BasePrice: decimal.RequireFromString("480.00"), Available: false}, nil)

	_, err := svc.CreateBooking(context.Background(), 3, 1, 2, "sedan", time.Now())
	var valErr *domain.ValidationError
	assert.ErrorAs(t, err, &valErr)
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestBookingTransitions(t *testing.T) {
	t.Run("ConfirmFromPending", func(t *testing.T) {
		repo, svc := newUpholsteryFixture()
		repo.On("GetBookingByID", mock.Anything, int32(5)).
			Return(&domain.UpholsteryBooking{ID: 5, UserID: 3, Status: domain.BookingStatusPending}, nil)
		repo.On("UpdateBooking", mock.Anything, mock.Anything).Return(nil)

		booking, err := svc.ConfirmBooking(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	})

	t.Run("CompleteRequiresInProgress", func(t *testing.T) {
		repo, svc := newUpholsteryFixture()
		repo.On("GetBookingByID", mock.Anything, int32(5)).
			Return(&domain.UpholsteryBooking{ID: 5, UserID: 3, Status: domain.BookingStatusConfirmed}, nil)

		_, err := svc.CompleteBooking(context.Background(), 5)
		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
		repo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
	})

	t.Run("CustomerCannotCancelOthersBooking", func(t *testing.T) {
		repo, svc := newUpholsteryFixture()
		repo.On("GetBookingByID", mock.Anything, int32(5)).
			Return(&domain.UpholsteryBooking{ID: 5, UserID: 3, Status: domain.BookingStatusPending}, nil)

		_, err := svc.CancelBooking(context.Background(), 99, false, 5)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
