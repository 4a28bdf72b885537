package db

import (
	"context"
	"database/sql"
	"time"
)

type Reservation struct {
	ResourceID int64     `json:"resource_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Purpose    string    `json:"purpose"`
}

// NewReservation is a booking request. UserID is nil for sessions that
// have no backing user row.
type NewReservation struct {
	ResourceID int64
	UserID     *int64
	StartTime  time.Time
	EndTime    time.Time
	Purpose    string
}

func (db *DB) ListReservations(ctx context.Context) ([]Reservation, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT resource_id, start_time, end_time, purpose
		FROM reservations
		ORDER BY start_time
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []Reservation{}
	for rows.Next() {
		var r Reservation
		if err := rows.Scan(&r.ResourceID, &r.StartTime, &r.EndTime, &r.Purpose); err != nil {
			return nil, err
		}
		reservations = append(reservations, r)
	}

	return reservations, rows.Err()
}

func (db *DB) CreateReservation(ctx context.Context, r NewReservation) (int64, error) {
	var userID sql.NullInt64
	if r.UserID != nil {
		userID = sql.NullInt64{Int64: *r.UserID, Valid: true}
	}

	var id int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO reservations (resource_id, user_id, start_time, end_time, purpose)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING reservation_id
	`, r.ResourceID, userID, r.StartTime, r.EndTime, r.Purpose).Scan(&id)

	return id, err
}
