package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smarttoystore/dashboard/internal/model"
)

func (c *Controller) Menu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.lg, c.service.ListDashboards(), http.StatusOK)
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	if apiErr := c.service.Ping(); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	c.dashboard(w, "admin")
}

func (c *Controller) EmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	c.dashboard(w, chi.URLParam(r, "slug"))
}

func (c *Controller) dashboard(w http.ResponseWriter, slug string) {
	state, apiErr := c.service.GetDashboard(slug)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, state, http.StatusOK)
}

func (c *Controller) EnableAdminAudio(w http.ResponseWriter, r *http.Request) {
	c.enableAudio(w, "admin")
}

func (c *Controller) EnableEmployeeAudio(w http.ResponseWriter, r *http.Request) {
	c.enableAudio(w, chi.URLParam(r, "slug"))
}

func (c *Controller) enableAudio(w http.ResponseWriter, slug string) {
	if apiErr := c.service.EnableAudio(slug); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) ClearOrders(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.ClearOrdersDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.service.ClearOrders("admin", body.Confirm); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusOK)
}
