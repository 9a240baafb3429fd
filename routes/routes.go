package routes

import (
	"net/http"
	"suraksha/handler"
	"suraksha/middleware"
	"suraksha/service"

	"github.com/gorilla/mux"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	userService *service.UserService,
	alertService *service.AlertService,
	stationService *service.StationService,
	complaintService *service.ComplaintService,
	chatService *service.ChatService,
	tripService *service.TripService,
	jwtSecret string,
) *mux.Router {
	router := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	alertHandler := handler.NewAlertHandler(alertService)
	stationHandler := handler.NewStationHandler(stationService)
	officerHandler := handler.NewOfficerHandler(stationService)
	userHandler := handler.NewUserHandler(userService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	chatHandler := handler.NewChatHandler(chatService)
	tripHandler := handler.NewTripHandler(tripService)

	// Initialize auth middleware
	authMiddleware := middleware.NewAuthMiddleware(userService, jwtSecret)
	policeAuthMiddleware := middleware.NewPoliceAuthMiddleware(stationService, jwtSecret)
	combinedAuthMiddleware := middleware.NewCombinedAuthMiddleware(authMiddleware, policeAuthMiddleware)

	citizen := func(h http.HandlerFunc) http.Handler {
		return authMiddleware.RequireAuth(h)
	}
	police := func(h http.HandlerFunc) http.Handler {
		return policeAuthMiddleware.RequirePoliceAuth(h)
	}
	// Staff endpoints accept an officer JWT or the admin token.
	staff := func(h http.HandlerFunc) http.Handler {
		return combinedAuthMiddleware.RequireStaffAuth(h)
	}
	// Citizen, officer and admin tokens are all accepted; the service layer
	// decides what the resolved principal may see.
	anyActor := func(h http.HandlerFunc) http.Handler {
		return combinedAuthMiddleware.RequireAnyAuth(h)
	}

	// API v1 routes
	apiV1 := router.PathPrefix("/api/v1").Subrouter()

	// Auth
	auth := apiV1.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", authHandler.Register).Methods("POST")
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")
	auth.HandleFunc("/police/login", authHandler.PoliceLogin).Methods("POST")

	// SOS alerts
	sos := apiV1.PathPrefix("/sos").Subrouter()
	sos.Handle("/alert", citizen(alertHandler.TriggerSOS)).Methods("POST")
	sos.Handle("/alerts", citizen(alertHandler.GetMyAlerts)).Methods("GET")
	sos.Handle("/alerts/{id}", anyActor(alertHandler.GetAlert)).Methods("GET")
	sos.Handle("/alerts/{id}/assign-officers", staff(alertHandler.AssignOfficers)).Methods("PUT")
	sos.Handle("/alerts/{id}/progress", staff(alertHandler.MarkInProgress)).Methods("PUT")
	sos.Handle("/alerts/{id}/resolve", staff(alertHandler.ResolveAlert)).Methods("PUT")
	sos.Handle("/alerts/{id}/cancel", anyActor(alertHandler.CancelAlert)).Methods("PUT")

	// Stations (public reads)
	stations := apiV1.PathPrefix("/stations").Subrouter()
	stations.HandleFunc("/nearby", stationHandler.GetNearbyStations).Methods("GET")
	stations.HandleFunc("", stationHandler.GetAllStations).Methods("GET")
	stations.HandleFunc("/{id}", stationHandler.GetStation).Methods("GET")
	stations.Handle("/{id}/officers", staff(stationHandler.GetStationOfficers)).Methods("GET")

	// Complaints
	complaints := apiV1.PathPrefix("/complaints").Subrouter()
	complaints.Handle("", citizen(complaintHandler.CreateComplaint)).Methods("POST")
	complaints.Handle("", citizen(complaintHandler.GetMyComplaints)).Methods("GET")
	complaints.Handle("/{id}", anyActor(complaintHandler.GetComplaint)).Methods("GET")
	complaints.Handle("/{id}/status", staff(complaintHandler.UpdateStatus)).Methods("PUT")
	complaints.Handle("/{id}/assign", staff(complaintHandler.AssignOfficer)).Methods("PUT")

	// Police station views
	policeRoutes := apiV1.PathPrefix("/police").Subrouter()
	policeRoutes.Handle("/complaints", police(complaintHandler.GetStationComplaints)).Methods("GET")

	// Users and guardians
	users := apiV1.PathPrefix("/users").Subrouter()
	users.Handle("/me", citizen(userHandler.GetMe)).Methods("GET")
	users.Handle("/me/location", citizen(userHandler.UpdateLocation)).Methods("PUT")
	users.Handle("/guardians", citizen(userHandler.GetGuardians)).Methods("GET")
	users.Handle("/guardians", citizen(userHandler.AddGuardian)).Methods("POST")
	users.Handle("/guardians/{id}", citizen(userHandler.UpdateGuardian)).Methods("PUT")
	users.Handle("/guardians/{id}", citizen(userHandler.DeleteGuardian)).Methods("DELETE")

	// Chat threads
	chats := apiV1.PathPrefix("/chats").Subrouter()
	chats.Handle("", citizen(chatHandler.CreateThread)).Methods("POST")
	chats.Handle("", anyActor(chatHandler.GetThreads)).Methods("GET")
	chats.Handle("/{id}/messages", anyActor(chatHandler.GetMessages)).Methods("GET")
	chats.Handle("/{id}/messages", anyActor(chatHandler.PostMessage)).Methods("POST")

	// Travel-buddy trips
	trips := apiV1.PathPrefix("/trips").Subrouter()
	trips.Handle("", citizen(tripHandler.CreateTrip)).Methods("POST")
	trips.Handle("", citizen(tripHandler.GetMyTrips)).Methods("GET")
	trips.Handle("/{id}", citizen(tripHandler.GetTrip)).Methods("GET")
	trips.Handle("/{id}/matches", citizen(tripHandler.GetMatches)).Methods("GET")
	trips.Handle("/{id}/join", citizen(tripHandler.JoinTrip)).Methods("POST")
	trips.Handle("/{id}/complete", citizen(tripHandler.CompleteTrip)).Methods("PUT")
	trips.Handle("/{id}/cancel", citizen(tripHandler.CancelTrip)).Methods("PUT")

	// Admin routes (env-based token; separate from citizen/police auth)
	admin := apiV1.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdminAuth)
	admin.HandleFunc("/stations", stationHandler.CreateStation).Methods("POST")
	admin.HandleFunc("/stations/{id}", stationHandler.UpdateStation).Methods("PUT")
	admin.HandleFunc("/stations/{id}", stationHandler.DeleteStation).Methods("DELETE")
	admin.HandleFunc("/officers", officerHandler.CreateOfficer).Methods("POST")
	admin.HandleFunc("/officers", officerHandler.GetAllOfficers).Methods("GET")
	admin.HandleFunc("/officers/{id}", officerHandler.GetOfficer).Methods("GET")
	admin.HandleFunc("/officers/{id}", officerHandler.UpdateOfficer).Methods("PUT")
	admin.HandleFunc("/officers/{id}", officerHandler.DeleteOfficer).Methods("DELETE")

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	return router
}
