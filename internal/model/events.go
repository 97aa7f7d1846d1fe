package model

type EventKind string

const (
	EventInsert EventKind = "insert"
	EventUpdate EventKind = "update"
	EventDelete EventKind = "delete"
)

// ChangeEvent is one row-level notification from the change-subscription.
// For deletes the row may carry only the id.
type ChangeEvent struct {
	Kind EventKind `json:"kind"`
	Row  Order     `json:"row"`
}
