package routes

import (
	"parlour/auth"
	"parlour/bookings"
	"parlour/catalog"
	"parlour/db"
	"parlour/middleware"
	"parlour/payments"
	"parlour/ratelim"
	"parlour/reviews"
	"parlour/users"

	"github.com/julienschmidt/httprouter"
)

// RoutesWrapper wires every domain's routes onto the router.
func RoutesWrapper(router *httprouter.Router, store *db.Store, rateLimiter *ratelim.RateLimiter) {
	gate := middleware.NewGate(store)

	AddAuthRoutes(router, store, rateLimiter)
	AddCatalogRoutes(router, store, gate)
	AddBookingRoutes(router, store, rateLimiter)
	AddPaymentRoutes(router, store, rateLimiter)
	AddUserRoutes(router, store, gate)
	AddReviewRoutes(router, store)
}

func AddAuthRoutes(router *httprouter.Router, store *db.Store, rateLimiter *ratelim.RateLimiter) {
	authService := auth.NewService(store)

	router.GET("/jwt", rateLimiter.Limit(authService.IssueToken))
}

func AddCatalogRoutes(router *httprouter.Router, store *db.Store, gate *middleware.Gate) {
	catalogService := catalog.NewService(store)

	router.GET("/services", catalogService.ListServices)

	router.GET("/service",
		middleware.Chain(middleware.Authenticate, gate.RequireAdmin)(catalogService.GetCatalog))
	router.POST("/service",
		middleware.Chain(middleware.Authenticate, gate.RequireAdmin)(catalogService.AddCatalogEntry))
	router.DELETE("/service/:id", middleware.Authenticate(catalogService.DeleteCatalogEntry))
}

func AddBookingRoutes(router *httprouter.Router, store *db.Store, rateLimiter *ratelim.RateLimiter) {
	bookingService := bookings.NewService(store)

	router.GET("/bookings", middleware.Authenticate(bookingService.ListBookings))
	router.GET("/bookings/:id", bookingService.GetBooking)
	router.GET("/bookings/:id/receipt", middleware.Authenticate(bookingService.PrintReceipt))
	router.POST("/bookings", rateLimiter.Limit(bookingService.CreateBooking))
	router.GET("/ws/bookings/:date", bookings.HandleWS)
}

func AddPaymentRoutes(router *httprouter.Router, store *db.Store, rateLimiter *ratelim.RateLimiter) {
	paymentService := payments.NewService(store)

	router.POST("/create-payment-intent", rateLimiter.Limit(paymentService.CreatePaymentIntent))
	router.POST("/payments",
		middleware.Chain(rateLimiter.Limit, paymentService.Idempotency)(paymentService.RecordPayment))
}

func AddUserRoutes(router *httprouter.Router, store *db.Store, gate *middleware.Gate) {
	userService := users.NewService(store)

	router.GET("/users", userService.ListUsers)
	router.GET("/users/admin/:email", userService.CheckAdmin)
	router.POST("/users", userService.CreateUser)
	router.PUT("/users/admin/:id",
		middleware.Chain(middleware.Authenticate, gate.RequireAdmin)(userService.PromoteAdmin))
	router.DELETE("/users/admin/:id", middleware.Authenticate(userService.DeleteUser))
}

func AddReviewRoutes(router *httprouter.Router, store *db.Store) {
	reviewService := reviews.NewService(store)

	router.GET("/review", middleware.Authenticate(reviewService.GetReviews))
	router.POST("/review", middleware.Authenticate(reviewService.AddReview))
}
