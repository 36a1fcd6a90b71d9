package api

import (
	"log"
	stdhttp "net/http"

	intconfig "pasajes/internal/config"
	h "pasajes/internal/http/handlers"
	"pasajes/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, hd *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "ruta no encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", hd.Health)
		api.GET("/routes", h.Routes)

		api.POST("/auth/login", hd.Login)
		// the consent screen redirects here without the operator token
		api.GET("/session/callback", hd.SessionCallback)

		operator := api.Group("", middleware.RequireOperator(hd.Operator.Secret))

		session := operator.Group("/session")
		session.GET("", hd.GetSession)
		session.POST("/sign-in", hd.SignIn)
		session.POST("/sign-out", hd.SignOut)

		data := operator.Group("", middleware.RequireSignedIn(hd.Session))
		data.POST("/data/reload", hd.Reload)
		data.GET("/trips", hd.GetTrips)
		data.GET("/company", hd.GetCompany)

		booking := data.Group("/booking")
		booking.GET("", hd.GetBooking)
		booking.DELETE("", hd.ResetBooking)
		booking.POST("/trip", hd.SelectTrip)
		booking.POST("/seats/:seat/toggle", hd.ToggleSeat)
		booking.POST("/client/lookup", hd.LookupClient)
		booking.PUT("/passenger", hd.SetPassenger)
		booking.POST("/commit", hd.CommitBooking)

		tickets := data.Group("/tickets")
		tickets.GET("/:id", hd.GetTicket)
		tickets.GET("/:id/pdf", hd.GetTicketPDF)
		tickets.GET("/:id/qr.png", hd.GetTicketQR)
	}

	h.SetRouter(r)
	return r
}
