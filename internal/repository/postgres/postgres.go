package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"wheelhouse-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.BrandRepository
	repository.VehicleRepository
	repository.CustomerRepository
	repository.RentalRepository
	repository.ReviewRepository
	repository.InstallmentRepository
	repository.NotificationRepository
	repository.UpholsteryRepository
	repository.SupportRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		BrandRepository:        NewBrandRepository(db),
		VehicleRepository:      NewVehicleRepository(db),
		CustomerRepository:     NewCustomerRepository(db),
		RentalRepository:       NewRentalRepository(db),
		ReviewRepository:       NewReviewRepository(db),
		InstallmentRepository:  NewInstallmentRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		UpholsteryRepository:   NewUpholsteryRepository(db),
		SupportRepository:      NewSupportRepository(db),
	}
}
