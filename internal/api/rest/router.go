package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"wheelhouse-backend/internal/security"
	"wheelhouse-backend/internal/service"
)

type RouterDeps struct {
	Tokens        security.TokenManager
	AuthSvc       service.AuthService
	BrandSvc      service.BrandService
	VehicleSvc    service.VehicleService
	CustomerSvc   service.CustomerService
	RentalSvc     service.RentalService
	ReviewSvc     service.ReviewService
	NoteSvc       service.NotificationService
	UpholsterySvc service.UpholsteryService
	SupportSvc    service.SupportService
}

// NewRouter builds the /api/v1 route tree. Everything except login and
// token refresh sits behind the auth middleware; write operations on
// the catalog and all lifecycle transitions are staff-only.
func NewRouter(deps RouterDeps) *mux.Router {
	root := mux.NewRouter()
	api := root.PathPrefix("/api/v1").Subrouter()

	authHandler := NewAuthHandler(deps.AuthSvc)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(deps.Tokens))

	brandHandler := NewBrandHandler(deps.BrandSvc)
	authed.HandleFunc("/brands", brandHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/brands", RequireStaff(brandHandler.Create)).Methods(http.MethodPost)
	authed.HandleFunc("/brands/{id}", brandHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/brands/{id}", RequireStaff(brandHandler.Update)).Methods(http.MethodPut)
	authed.HandleFunc("/brands/{id}", RequireStaff(brandHandler.Delete)).Methods(http.MethodDelete)

	vehicleHandler := NewVehicleHandler(deps.VehicleSvc)
	authed.HandleFunc("/vehicles", vehicleHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/vehicles", RequireStaff(vehicleHandler.Create)).Methods(http.MethodPost)
	authed.HandleFunc("/vehicles/{id}", vehicleHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/vehicles/{id}", RequireStaff(vehicleHandler.Update)).Methods(http.MethodPut)
	authed.HandleFunc("/vehicles/{id}", RequireStaff(vehicleHandler.Delete)).Methods(http.MethodDelete)
	authed.HandleFunc("/vehicles/{id}/quote", vehicleHandler.Quote).Methods(http.MethodGet)
	authed.HandleFunc("/vehicles/{id}/tiers", vehicleHandler.ListTiers).Methods(http.MethodGet)
	authed.HandleFunc("/vehicles/{id}/tiers", RequireStaff(vehicleHandler.CreateTier)).Methods(http.MethodPost)
	authed.HandleFunc("/vehicles/{id}/tiers/{tierID}", RequireStaff(vehicleHandler.DeleteTier)).Methods(http.MethodDelete)

	reviewHandler := NewReviewHandler(deps.ReviewSvc)
	authed.HandleFunc("/vehicles/{id}/reviews", reviewHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/vehicles/{id}/reviews", reviewHandler.Create).Methods(http.MethodPost)

	customerHandler := NewCustomerHandler(deps.CustomerSvc)
	authed.HandleFunc("/customers", RequireStaff(customerHandler.List)).Methods(http.MethodGet)
	authed.HandleFunc("/customers", RequireStaff(customerHandler.Create)).Methods(http.MethodPost)
	authed.HandleFunc("/customers/{id}", RequireStaff(customerHandler.Get)).Methods(http.MethodGet)
	authed.HandleFunc("/customers/{id}", RequireStaff(customerHandler.Update)).Methods(http.MethodPut)

	rentalHandler := NewRentalHandler(deps.RentalSvc)
	authed.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{id}", rentalHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/{id}/confirm", RequireStaff(rentalHandler.Confirm)).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{id}/start", RequireStaff(rentalHandler.Start)).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{id}/complete", RequireStaff(rentalHandler.Complete)).Methods(http.MethodPost)
	// Cancel is reachable by the renter too; the service narrows what a
	// non-staff caller may cancel.
	authed.HandleFunc("/rentals/{id}/cancel", rentalHandler.Cancel).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{id}/extend", RequireStaff(rentalHandler.Extend)).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{id}/installments", rentalHandler.ListInstallments).Methods(http.MethodGet)
	authed.HandleFunc("/installments/{id}/pay", RequireStaff(rentalHandler.PayInstallment)).Methods(http.MethodPost)

	noteHandler := NewNotificationHandler(deps.NoteSvc)
	authed.HandleFunc("/notifications", noteHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id}/read", noteHandler.MarkAsRead).Methods(http.MethodPost)

	upholsteryHandler := NewUpholsteryHandler(deps.UpholsterySvc)
	authed.HandleFunc("/upholstery/materials", upholsteryHandler.ListMaterials).Methods(http.MethodGet)
	authed.HandleFunc("/upholstery/materials", RequireStaff(upholsteryHandler.CreateMaterial)).Methods(http.MethodPost)
	authed.HandleFunc("/upholstery/types", upholsteryHandler.ListTypes).Methods(http.MethodGet)
	authed.HandleFunc("/upholstery/types", RequireStaff(upholsteryHandler.CreateType)).Methods(http.MethodPost)
	authed.HandleFunc("/upholstery/bookings", upholsteryHandler.ListBookings).Methods(http.MethodGet)
	authed.HandleFunc("/upholstery/bookings", upholsteryHandler.CreateBooking).Methods(http.MethodPost)
	authed.HandleFunc("/upholstery/bookings/{id}", upholsteryHandler.GetBooking).Methods(http.MethodGet)
	authed.HandleFunc("/upholstery/bookings/{id}/confirm", RequireStaff(upholsteryHandler.ConfirmBooking)).Methods(http.MethodPost)
	authed.HandleFunc("/upholstery/bookings/{id}/start", RequireStaff(upholsteryHandler.StartBooking)).Methods(http.MethodPost)
	authed.HandleFunc("/upholstery/bookings/{id}/complete", RequireStaff(upholsteryHandler.CompleteBooking)).Methods(http.MethodPost)
	authed.HandleFunc("/upholstery/bookings/{id}/cancel", upholsteryHandler.CancelBooking).Methods(http.MethodPost)

	supportHandler := NewSupportHandler(deps.SupportSvc)
	authed.HandleFunc("/support/tickets", supportHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/support/tickets", supportHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/support/tickets/{id}", supportHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/support/tickets/{id}/resolve", RequireStaff(supportHandler.Resolve)).Methods(http.MethodPost)

	return root
}
