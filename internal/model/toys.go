package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Toy struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	RFIDUid   string          `json:"rfid_uid"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  *string         `json:"image_url"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}
