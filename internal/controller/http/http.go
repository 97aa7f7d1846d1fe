package http

import (
	"go.uber.org/zap"

	"github.com/smarttoystore/dashboard/internal/model"
)

type Service interface {
	ListDashboards() []model.DashboardInfo
	GetDashboard(slug string) (*model.DashboardState, *model.APIError)
	EnableAudio(slug string) *model.APIError
	ClearOrders(slug string, confirm bool) *model.APIError
	Ping() *model.APIError
}

type Controller struct {
	service Service
	lg      *zap.SugaredLogger
}

func New(s Service, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		lg:      lg,
		service: s,
	}
}
