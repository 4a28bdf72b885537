package credentials

import (
	"time"

	"booking-service/internal/session"
)

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         session.Role
	Email        string
	PhoneNumber  string
	Age          *int
	ConsentGiven bool
	CreatedAt    time.Time
}

// Principal is the identity a session is minted for after login.
func (u User) Principal() session.Principal {
	id := u.ID
	username := u.Username
	role := u.Role

	p := session.Principal{
		UserID:   &id,
		Username: &username,
		Role:     &role,
	}
	if u.Age != nil {
		age := *u.Age
		p.Age = &age
	}
	return p
}

// Registration is the sign-up form after parsing.
type Registration struct {
	Username     string
	Password     string
	Role         session.Role
	Email        string
	PhoneNumber  string
	Age          *int
	ConsentGiven bool
}
