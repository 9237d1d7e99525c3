package routes

import (
	"net/http"

	"milovat/amenities"
	"milovat/announcements"
	"milovat/auth"
	"milovat/booking"
	"milovat/documents"
	"milovat/fines"
	"milovat/incidents"
	"milovat/middleware"
	"milovat/payments"
	"milovat/providers"
	"milovat/ratelim"
	"milovat/utils"
	"milovat/visits"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/docs/*filepath", http.Dir("static/docs"))
	router.ServeFiles("/static/announcementpic/*filepath", http.Dir("static/announcementpic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(auth.RefreshToken))
}

func AddAmenityRoutes(router *httprouter.Router) {
	router.GET("/api/amenities", amenities.GetAmenities)
	router.GET("/api/amenities/:id", amenities.GetAmenity)
	router.GET("/api/amenities/:id/availability", booking.GetAvailability)
	router.GET("/api/amenities/:id/bookings", middleware.Authenticate(booking.ListBookings))
	router.POST("/api/amenities/:id/bookings", ratelim.RateLimit(middleware.Authenticate(booking.CreateBooking)))
	router.PATCH("/api/bookings/:id/status", middleware.Authenticate(booking.UpdateBookingStatus))
	router.GET("/ws/amenities/:id", booking.HandleWS)
}

func AddIncidentRoutes(router *httprouter.Router) {
	router.GET("/api/incidencias", incidents.GetIncidents)
	router.GET("/api/incidencias/:id", incidents.GetIncident)
	router.POST("/api/incidencias", ratelim.RateLimit(incidents.CreateIncident))
	router.PATCH("/api/incidencias/:id", ratelim.RateLimit(incidents.PatchIncident))
}

func AddFineRoutes(router *httprouter.Router) {
	router.GET("/api/multas", middleware.Authenticate(fines.GetFines))
	router.POST("/api/multas", ratelim.RateLimit(middleware.RequireRole("admin", fines.CreateFine)))
	router.PATCH("/api/multas/:id", middleware.RequireRole("admin", fines.UpdateFineStatus))
}

func AddPaymentRoutes(router *httprouter.Router) {
	router.GET("/api/pagos", middleware.Authenticate(payments.GetPayments))
	router.POST("/api/pagos", ratelim.RateLimit(middleware.Authenticate(payments.CreatePayment)))
	router.PATCH("/api/pagos/:id/pay", middleware.Authenticate(payments.MarkPaid))
	router.GET("/api/pagos/:id/receipt", middleware.Authenticate(payments.PrintReceipt))
}

func AddVisitRoutes(router *httprouter.Router) {
	router.GET("/api/visitas", middleware.Authenticate(visits.GetVisits))
	router.POST("/api/visitas", ratelim.RateLimit(middleware.Authenticate(visits.CreateVisit)))
	router.PATCH("/api/visitas/:id/checkin", middleware.Authenticate(visits.CheckIn))
	router.PATCH("/api/visitas/:id/checkout", middleware.Authenticate(visits.CheckOut))
	router.GET("/api/visitas/:id/pass", middleware.Authenticate(visits.PrintPass))
}

func AddProviderRoutes(router *httprouter.Router) {
	router.GET("/api/proveedores", providers.GetProviders)
	router.GET("/api/proveedores/:id", providers.GetProvider)
	router.POST("/api/proveedores", middleware.RequireRole("admin", providers.CreateProvider))
	router.PUT("/api/proveedores/:id", middleware.RequireRole("admin", providers.UpdateProvider))
	router.DELETE("/api/proveedores/:id", middleware.RequireRole("admin", providers.DeleteProvider))
}

func AddAnnouncementRoutes(router *httprouter.Router) {
	router.GET("/api/anuncios", announcements.GetAnnouncements)
	router.POST("/api/anuncios", middleware.RequireRole("admin", announcements.CreateAnnouncement))
	router.PUT("/api/anuncios/:id", middleware.RequireRole("admin", announcements.UpdateAnnouncement))
	router.DELETE("/api/anuncios/:id", middleware.RequireRole("admin", announcements.DeleteAnnouncement))
	router.POST("/api/anuncios/:id/banner", middleware.RequireRole("admin", announcements.UploadBanner))
}

func AddDocumentRoutes(router *httprouter.Router) {
	router.GET("/api/documentos", middleware.Authenticate(documents.GetDocuments))
	router.POST("/api/documentos", middleware.RequireRole("admin", documents.UploadDocument))
	router.DELETE("/api/documentos/:id", middleware.RequireRole("admin", documents.DeleteDocument))
}

func AddUtilityRoutes(router *httprouter.Router) {
	router.GET("/api/csrf", utils.CSRF)
}
