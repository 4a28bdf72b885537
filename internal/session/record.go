package session

import "time"

// Role is the access level attached to a session.
type Role string

const (
	RoleReserver      Role = "reserver"
	RoleAdministrator Role = "administrator"

	// DefaultUsername is used when a principal carries no username.
	DefaultUsername = "guest"
)

// IsAdministrator reports whether r grants administrator access. Any value
// other than the exact administrator role is treated as non-administrator.
func (r Role) IsAdministrator() bool {
	return r == RoleAdministrator
}

// Principal describes who a new session is minted for. Every field is
// optional; missing values are defaulted by NewRecord.
type Principal struct {
	UserID   *int64
	Username *string
	Role     *Role
	Age      *int
}

// Record is the server-side state behind a session token. Records are
// never mutated after creation.
type Record struct {
	UserID    *int64 // nil for guest sessions
	Username  string
	Role      Role
	Age       *int
	CreatedAt time.Time // expiry is measured from here, never refreshed
}

// NewRecord fills in defaults for any field the principal leaves unset.
func NewRecord(p Principal, createdAt time.Time) Record {
	rec := Record{
		Username:  DefaultUsername,
		Role:      RoleReserver,
		CreatedAt: createdAt,
	}

	if p.UserID != nil {
		id := *p.UserID
		rec.UserID = &id
	}
	if p.Username != nil && *p.Username != "" {
		rec.Username = *p.Username
	}
	if p.Role != nil && *p.Role != "" {
		rec.Role = *p.Role
	}
	if p.Age != nil {
		age := *p.Age
		rec.Age = &age
	}

	return rec
}

// clone returns a copy that shares no pointers with r.
func (r Record) clone() Record {
	if r.UserID != nil {
		id := *r.UserID
		r.UserID = &id
	}
	if r.Age != nil {
		age := *r.Age
		r.Age = &age
	}
	return r
}

// IsAdministrator reports whether the session holder is an administrator.
func (r Record) IsAdministrator() bool {
	return r.Role.IsAdministrator()
}

// Expired reports whether the record is at least ttl old at now.
func (r Record) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(r.CreatedAt) >= ttl
}
