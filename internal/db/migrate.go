package db

import (
	"context"
	"database/sql"
)

const bookingMigration = `
CREATE TABLE IF NOT EXISTS users (
    user_id bigserial PRIMARY KEY,
    username text NOT NULL,
    password_hash text NOT NULL,
    role text NOT NULL DEFAULT 'reserver',
    email text,
    phone_number text,
    age integer,
    consent_given boolean NOT NULL DEFAULT false,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_username_unique
ON users (username);

CREATE TABLE IF NOT EXISTS resources (
    resource_id bigserial PRIMARY KEY,
    resource_name text NOT NULL,
    description text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS reservations (
    reservation_id bigserial PRIMARY KEY,
    resource_id bigint NOT NULL REFERENCES resources(resource_id) ON DELETE CASCADE,
    user_id bigint REFERENCES users(user_id) ON DELETE SET NULL,
    start_time timestamptz NOT NULL,
    end_time timestamptz NOT NULL,
    purpose text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    CONSTRAINT reservations_time_order CHECK (end_time > start_time)
);

CREATE INDEX IF NOT EXISTS reservations_resource_id_idx
ON reservations (resource_id);
`

func RunBookingMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, bookingMigration)
	return err
}
