package service

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/smarttoystore/dashboard/internal/model"
)

// LiveView is one running screen: the admin overview or a department view.
type LiveView interface {
	Info() model.DashboardInfo
	State() model.DashboardState
	Arm()
	Clear() error
	IsAdmin() bool
}

type Pinger interface {
	Ping() error
}

type Service struct {
	views   map[string]LiveView
	order   []string
	storage Pinger
	broker  Pinger
	lg      *zap.SugaredLogger
}

func New(views []LiveView, storage, broker Pinger, lg *zap.SugaredLogger) *Service {
	s := &Service{
		views:   make(map[string]LiveView, len(views)),
		order:   make([]string, 0, len(views)),
		storage: storage,
		broker:  broker,
		lg:      lg,
	}

	for _, v := range views {
		slug := v.Info().Slug
		s.views[slug] = v
		s.order = append(s.order, slug)
	}

	return s
}

func (s *Service) ListDashboards() []model.DashboardInfo {
	result := make([]model.DashboardInfo, 0, len(s.order))
	for _, slug := range s.order {
		result = append(result, s.views[slug].Info())
	}

	return result
}

func (s *Service) GetDashboard(slug string) (*model.DashboardState, *model.APIError) {
	v, ok := s.views[slug]
	if !ok {
		return nil, &model.APIError{
			Code:    http.StatusNotFound,
			Message: model.ErrDashboardNotFoundMessage,
		}
	}

	state := v.State()
	return &state, nil
}

func (s *Service) EnableAudio(slug string) *model.APIError {
	v, ok := s.views[slug]
	if !ok {
		return &model.APIError{
			Code:    http.StatusNotFound,
			Message: model.ErrDashboardNotFoundMessage,
		}
	}

	v.Arm()
	return nil
}

// ClearOrders wipes the whole history. The confirm flag is the API form of
// the "are you sure" dialog, a clear without it is rejected.
func (s *Service) ClearOrders(slug string, confirm bool) *model.APIError {
	v, ok := s.views[slug]
	if !ok {
		return &model.APIError{
			Code:    http.StatusNotFound,
			Message: model.ErrDashboardNotFoundMessage,
		}
	}

	if !v.IsAdmin() {
		return &model.APIError{
			Code:    http.StatusForbidden,
			Message: model.ErrNotAdminMessage,
		}
	}

	if !confirm {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrConfirmationRequiredMessage,
		}
	}

	if err := v.Clear(); err != nil {
		return &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrClearOrdersMessage,
		}
	}

	return nil
}

func (s *Service) Ping() *model.APIError {
	if err := s.storage.Ping(); err != nil {
		s.lg.Errorf("storage ping failed: %v", err)
		return &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	if err := s.broker.Ping(); err != nil {
		s.lg.Errorf("broker ping failed: %v", err)
		return &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return nil
}
