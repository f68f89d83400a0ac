package models

import "time"

// User is the identity returned by the authentication backend. The client
// carries it around for display purposes but never interprets it beyond that.
type User struct {
	ID        int        `json:"id" yaml:"id"`
	Email     string     `json:"email" yaml:"email"`
	Name      string     `json:"name,omitempty" yaml:"name,omitempty"`
	FirstName string     `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Verified  *bool      `json:"is_verified,omitempty" yaml:"is_verified,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// GetName returns the best available display name for the user.
func (u *User) GetName() string {
	if len(u.Name) > 0 {
		return u.Name
	}

	full := u.FirstName
	if len(u.LastName) > 0 {
		if len(full) > 0 {
			full += " "
		}
		full += u.LastName
	}
	if len(full) > 0 {
		return full
	}

	if len(u.Email) > 0 {
		return u.Email
	}
	return "Unknown"
}
