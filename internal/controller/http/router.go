package http

import (
	"github.com/go-chi/chi/v5"
)

// InitRoutes binds the fixed presentation surface: a menu, the five
// dashboards, the admin bulk-clear and the audio-arming endpoints.
func InitRoutes(r *chi.Mux, c *Controller) *chi.Mux {
	r.Get("/", c.Menu)
	r.Get("/ping", c.Ping)

	r.Get("/admin", c.AdminDashboard)
	r.Post("/admin/orders/clear", c.ClearOrders)
	r.Post("/admin/audio/enable", c.EnableAdminAudio)

	r.Get("/employee/{slug}", c.EmployeeDashboard)
	r.Post("/employee/{slug}/audio/enable", c.EnableEmployeeAudio)

	return r
}
