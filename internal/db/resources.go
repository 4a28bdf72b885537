package db

import (
	"context"
	"time"
)

type Resource struct {
	ID          int64     `json:"resource_id"`
	Name        string    `json:"resource_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (db *DB) ListResources(ctx context.Context) ([]Resource, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT resource_id, resource_name, description, created_at
		FROM resources
		ORDER BY resource_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resources := []Resource{}
	for rows.Next() {
		var r Resource
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.CreatedAt); err != nil {
			return nil, err
		}
		resources = append(resources, r)
	}

	return resources, rows.Err()
}

func (db *DB) CreateResource(ctx context.Context, name, description string) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO resources (resource_name, description)
		VALUES ($1, $2)
		RETURNING resource_id
	`, name, description).Scan(&id)

	return id, err
}
