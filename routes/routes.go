package routes

import (
	"net/http"

	"earlobe/archive"
	"earlobe/auth"
	"earlobe/events"
	"earlobe/live"
	"earlobe/middleware"
	"earlobe/ratelim"
	"earlobe/schedule"
	"earlobe/venues"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
}

func AddEventsRoutes(router *httprouter.Router) {
	// Public
	router.POST("/api/events/submit", ratelim.RateLimit(events.SubmitEvent))
	router.GET("/api/events/public", ratelim.RateLimit(events.GetPublicEvents))
	router.GET("/api/events/event/:eventid", ratelim.RateLimit(events.GetEvent))

	// Admin
	router.GET("/api/events/events", middleware.AdminOnly(events.GetEvents))
	router.GET("/api/events/admin/:eventid", middleware.AdminOnly(events.GetEventAdmin))
	router.PUT("/api/events/event/:eventid", middleware.AdminOnly(events.EditEvent))
	router.PUT("/api/events/event/:eventid/approve", middleware.AdminOnly(events.ApproveEvent))
	router.DELETE("/api/events/event/:eventid", middleware.AdminOnly(events.DeleteEvent))
	router.POST("/api/events/seed", middleware.AdminOnly(events.SeedEvents))
}

func AddVenueRoutes(router *httprouter.Router) {
	// Public
	router.GET("/api/venues", ratelim.RateLimit(venues.GetVenues))
	router.GET("/api/venues/options", ratelim.RateLimit(venues.GetVenueOptions))
	router.GET("/api/venues/venue/:venueid", ratelim.RateLimit(venues.GetVenue))

	// Admin
	router.GET("/api/venues/all", middleware.AdminOnly(venues.GetAllVenues))
	router.POST("/api/venues", middleware.AdminOnly(venues.CreateVenue))
	router.PUT("/api/venues/venue/:venueid", middleware.AdminOnly(venues.EditVenue))
	router.PUT("/api/venues/venue/:venueid/approve", middleware.AdminOnly(venues.ApproveVenue))
	router.DELETE("/api/venues/venue/:venueid", middleware.AdminOnly(venues.DeleteVenue))
}

func AddScheduleRoutes(router *httprouter.Router) {
	router.GET("/api/schedule", ratelim.RateLimit(schedule.GetSchedule))
	router.GET("/api/schedule/weekly.pdf", ratelim.RateLimit(schedule.WeeklyPDF))
	router.GET("/api/calendar/dates", ratelim.RateLimit(schedule.GetCalendarDates))
	router.GET("/api/schedule/admin", middleware.AdminOnly(schedule.GetScheduleAdmin))
}

func AddArchiveRoutes(router *httprouter.Router) {
	router.GET("/api/archive", ratelim.RateLimit(archive.GetArchive))
	router.POST("/api/archive", middleware.AdminOnly(archive.AddArchiveEntry))
}

func AddLiveRoutes(router *httprouter.Router) {
	router.GET("/api/live", live.AdminSocket)
}
