package pg

import (
	"github.com/google/uuid"

	"github.com/smarttoystore/dashboard/internal/model"
)

// GetOrders returns the newest orders first, optionally narrowed to one
// category. An empty category means all departments (the admin view).
func (r *Repository) GetOrders(category string, limit int) ([]model.Order, error) {
	result := make([]model.Order, 0)

	query := `SELECT id, user_id, toy_id, toy_name, category, rfid_uid, assigned_person, status, total_amount, created_at, updated_at
	FROM orders ORDER BY created_at DESC LIMIT $1`
	args := []any{limit}

	if category != "" {
		query = `SELECT id, user_id, toy_id, toy_name, category, rfid_uid, assigned_person, status, total_amount, created_at, updated_at
	FROM orders WHERE category = $1 ORDER BY created_at DESC LIMIT $2`
		args = []any{category, limit}
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		if r.classifier.Classify(err) == Connection {
			r.lg.Errorf("orders query failed, backend connection lost: %v", err)
		}
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var order model.Order
		if err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.ToyID,
			&order.ToyName,
			&order.Category,
			&order.RFIDUid,
			&order.AssignedPerson,
			&order.Status,
			&order.TotalAmount,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			return nil, err
		}

		result = append(result, order)
	}

	return result, rows.Err()
}

// ClearOrders wipes the orders table. Kept as "everything but the nil id"
// so the statement stays a plain conditional delete.
func (r *Repository) ClearOrders() (int64, error) {
	res, err := r.db.Exec(`DELETE FROM orders WHERE id <> $1`, uuid.Nil.String())
	if err != nil {
		if r.classifier.Classify(err) == Connection {
			r.lg.Errorf("clear orders failed, backend connection lost: %v", err)
		}
		return 0, err
	}

	return res.RowsAffected()
}
