package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"booking-service/internal/db"
	"booking-service/internal/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyRegistered  = errors.New("username already taken")
	ErrUsernameRequired   = errors.New("username required")
)

type Service struct {
	db *db.DB
}

func NewService(db *db.DB) *Service {
	return &Service{db: db}
}

// Register stores a new user and returns it with its assigned id.
func (s *Service) Register(ctx context.Context, reg Registration) (User, error) {
	if reg.Username == "" {
		return User{}, ErrUsernameRequired
	}

	hash, err := HashPassword(reg.Password)
	if err != nil {
		return User{}, err
	}

	var (
		age   sql.NullInt64
		email sql.NullString
		phone sql.NullString
	)
	if reg.Age != nil {
		age = sql.NullInt64{Int64: int64(*reg.Age), Valid: true}
	}
	if reg.Email != "" {
		email = sql.NullString{String: reg.Email, Valid: true}
	}
	if reg.PhoneNumber != "" {
		phone = sql.NullString{String: reg.PhoneNumber, Valid: true}
	}

	u := User{
		Username:     reg.Username,
		PasswordHash: hash,
		Role:         reg.Role,
		Email:        reg.Email,
		PhoneNumber:  reg.PhoneNumber,
		Age:          reg.Age,
		ConsentGiven: reg.ConsentGiven,
	}

	if u.Role == "" {
		u.Role = session.RoleReserver
	}

	err = s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, role, email, phone_number, age, consent_given)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING user_id, created_at
	`, u.Username, u.PasswordHash, string(u.Role), email, phone, age, u.ConsentGiven).
		Scan(&u.ID, &u.CreatedAt)

	if err != nil {
		if db.IsUniqueViolation(err) {
			return User{}, ErrAlreadyRegistered
		}
		return User{}, fmt.Errorf("credentials: insert user: %w", err)
	}

	return u, nil
}

// Authenticate checks username and password. Unknown users and wrong
// passwords both yield ErrInvalidCredentials; storage failures are
// returned as-is so callers can tell them apart.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	u, err := s.userBy(ctx, "username", username)
	if errors.Is(err, db.ErrNotFound) {
		// hide whether user exists or not
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, err
	}

	if err := VerifyPassword(u.PasswordHash, password); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

// UserByID loads a user for display purposes.
func (s *Service) UserByID(ctx context.Context, id int64) (User, error) {
	return s.userBy(ctx, "user_id", id)
}

func (s *Service) userBy(ctx context.Context, column string, value any) (User, error) {
	var (
		u     User
		role  string
		email sql.NullString
		phone sql.NullString
		age   sql.NullInt64
	)

	// column is one of two fixed identifiers, never user input
	err := s.db.QueryRowContext(ctx, `
		SELECT user_id, username, password_hash, role, email, phone_number, age, consent_given, created_at
		FROM users
		WHERE `+column+` = $1
	`, value).Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &email, &phone, &age, &u.ConsentGiven, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return User{}, db.ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("credentials: load user: %w", err)
	}

	u.Role = session.Role(role)
	u.Email = email.String
	u.PhoneNumber = phone.String
	if age.Valid {
		a := int(age.Int64)
		u.Age = &a
	}

	return u, nil
}
