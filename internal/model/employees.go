package model

import "github.com/google/uuid"

type Employee struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	RFIDUid  string    `json:"rfid_uid"`
	Active   bool      `json:"active"`
}
