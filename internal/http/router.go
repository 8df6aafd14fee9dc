package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"busbackend/internal/cache"
	intconfig "busbackend/internal/config"
	h "busbackend/internal/http/handlers"
	"busbackend/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)
	h.SetSeatMapCache(cache.NewSeatMapCache(env.RedisAddr, 5*time.Minute))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "NotFound: no such route",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	protected := middleware.Protected([]byte(env.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)

		layouts := api.Group("/layouts")
		layouts.GET("", h.GetLayouts)
		layouts.GET("/:id", h.GetLayoutByID)
		layouts.POST("", h.SaveLayout)
		layouts.PUT("/:id", h.UpdateLayout)
		layouts.DELETE("/:id", h.DeleteLayout)

		routes := api.Group("/routes")
		routes.GET("", h.GetRoutes)
		routes.POST("", h.CreateRoute)
		routes.PUT("/:id", h.UpdateRoute)
		routes.DELETE("/:id", h.DeleteRoute)

		api.POST("/vehicle-types", h.CreateVehicleType)
		api.POST("/vehicles", h.CreateVehicle)
		api.PUT("/vehicles/:id", h.UpdateVehicle)
		api.DELETE("/vehicles/:id", protected, h.DeleteVehicle)

		api.PUT("/schedules/:id", h.UpdateSchedule)
		api.DELETE("/schedules/:id", h.DeleteSchedule)

		trips := api.Group("/trips")
		trips.POST("", h.CreateTrip)
		trips.GET("/:id", h.GetTrip)
		trips.GET("/:id/seats", h.GetTripSeatStates)
		trips.POST("/:id/initialize", h.InitializeBookings)

		bookings := api.Group("/bookings")
		bookings.POST("", protected, h.CreateBooking)
		bookings.GET("/:id/e-ticket", protected, h.GetBookingETicket)
	}

	return r
}
