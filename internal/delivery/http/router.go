package http

import (
	"net/http"

	"medical-escrow-ledger/internal/delivery/http/handler"
	"medical-escrow-ledger/internal/delivery/http/middleware"
	"medical-escrow-ledger/internal/domain/repository"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	registryHandler    *handler.RegistryHandler
	appointmentHandler *handler.AppointmentHandler
	walletHandler      *handler.WalletHandler
	billingHandler     *handler.BillingHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	serializer         *middleware.Serializer
	registry           repository.RoleRegistry
}

func NewRouter(
	authHandler *handler.AuthHandler,
	registryHandler *handler.RegistryHandler,
	appointmentHandler *handler.AppointmentHandler,
	walletHandler *handler.WalletHandler,
	billingHandler *handler.BillingHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	serializer *middleware.Serializer,
	registry repository.RoleRegistry,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		registryHandler:    registryHandler,
		appointmentHandler: appointmentHandler,
		walletHandler:      walletHandler,
		billingHandler:     billingHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		serializer:         serializer,
		registry:           registry,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/token", r.authHandler.IssueToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/revoke", r.authHandler.RevokeToken).Methods(http.MethodPost)

	// Every ledger route is authenticated and serialized: one operation at a
	// time, each an atomic unit of work.
	ledger := api.PathPrefix("").Subrouter()
	ledger.Use(r.authMiddleware.Authenticate)
	ledger.Use(r.serializer.Handle)

	// Admin routes (entity creation and role grants)
	admin := ledger.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin(r.registry))
	admin.HandleFunc("/clinics", r.registryHandler.CreateClinic).Methods(http.MethodPost)
	admin.HandleFunc("/patients", r.registryHandler.CreatePatient).Methods(http.MethodPost)
	admin.HandleFunc("/roles/{role}", r.registryHandler.GrantRole).Methods(http.MethodPost)

	// Entity accessors
	ledger.HandleFunc("/clinics/{address}", r.registryHandler.GetClinic).Methods(http.MethodGet)
	ledger.HandleFunc("/patients/{address}", r.registryHandler.GetPatient).Methods(http.MethodGet)
	ledger.HandleFunc("/hospitals/{address}", r.registryHandler.GetHospital).Methods(http.MethodGet)
	ledger.HandleFunc("/hospitals", r.registryHandler.CreateHospital).Methods(http.MethodPost)

	// Appointment ledger
	ledger.HandleFunc("/clinics/{address}/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	ledger.HandleFunc("/clinics/{address}/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	ledger.HandleFunc("/clinics/{address}/appointments/{key}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	ledger.HandleFunc("/clinics/{address}/appointments/{key}/pay", r.appointmentHandler.PayAppointment).Methods(http.MethodPost)
	ledger.HandleFunc("/clinics/{address}/appointments/{key}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)

	// Wallet escrow
	ledger.HandleFunc("/wallet/deposit", r.walletHandler.Deposit).Methods(http.MethodPost)
	ledger.HandleFunc("/wallet/pay", r.walletHandler.Pay).Methods(http.MethodPost)
	ledger.HandleFunc("/wallet/withdraw", r.walletHandler.Withdraw).Methods(http.MethodPost)

	// Billing ledger
	ledger.HandleFunc("/hospitals/{address}/bills", r.billingHandler.GenerateBill).Methods(http.MethodPost)
	ledger.HandleFunc("/hospitals/{address}/bills/{id}/pay", r.billingHandler.PayBill).Methods(http.MethodPost)
	ledger.HandleFunc("/hospitals/{address}/withdraw", r.billingHandler.WithdrawAll).Methods(http.MethodPost)
	ledger.HandleFunc("/hospitals/{address}/balance", r.billingHandler.GetBalance).Methods(http.MethodGet)
	ledger.HandleFunc("/hospitals/{address}/bills/{payer}/{id}/charge", r.billingHandler.GetBillCharge).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
