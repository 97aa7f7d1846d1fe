package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusOnTheWay   OrderStatus = "ON_THE_WAY"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
)

const (
	CategoryToyGuns       = "Toy Guns"
	CategoryActionFigures = "Action Figures"
	CategoryDolls         = "Dolls"
	CategoryPuzzles       = "Puzzles"
)

// Order is the row shape of the orders table. The dashboard never creates
// orders, it only renders whatever the backend sends, so status is not
// validated against the enum on this side.
type Order struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	ToyID          uuid.UUID       `json:"toy_id"`
	ToyName        string          `json:"toy_name"`
	Category       string          `json:"category"`
	RFIDUid        string          `json:"rfid_uid"`
	AssignedPerson string          `json:"assigned_person"`
	Status         OrderStatus     `json:"status"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Stats are recomputed from the current order list on every read, never stored.
// Revenue is filled for the admin view only, formatted to two decimal places.
type Stats struct {
	Total      int    `json:"total"`
	Pending    int    `json:"pending"`
	InProgress int    `json:"in_progress"`
	Delivered  int    `json:"delivered"`
	Revenue    string `json:"revenue,omitempty"`
}

// CategorySlug converts a category name to its routing-key form,
// e.g. "Toy Guns" -> "toy-guns".
func CategorySlug(category string) string {
	return strings.ReplaceAll(strings.ToLower(category), " ", "-")
}
