package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ErrInternalServerMessage       = "internal server error"
	ErrDashboardNotFoundMessage    = "dashboard not found"
	ErrNotAdminMessage             = "operation allowed on the admin dashboard only"
	ErrConfirmationRequiredMessage = "confirmation required"
	ErrClearOrdersMessage          = "failed to clear orders"
)

var (
	ErrDashboardNotFound = errors.New(ErrDashboardNotFoundMessage)
	ErrNotAdmin          = errors.New(ErrNotAdminMessage)
)
