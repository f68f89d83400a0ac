package models

import "time"

// Session is the pair of authenticated user and bearer token representing a
// logged-in context. Either both fields are set or both are empty — the
// session store and state manager enforce this, nothing else should.
type Session struct {
	User  *User  `json:"user" yaml:"user"`
	Token string `json:"token" yaml:"token"`
}

// Authenticated reports whether the session holds a complete credential pair.
func (s Session) Authenticated() bool {
	return s.User != nil && len(s.Token) > 0
}

// StoredSession is the serialized form of a Session persisted on the local
// machine between runs.
type StoredSession struct {
	Version   int       `yaml:"version"`
	User      *User     `yaml:"user"`
	Token     string    `yaml:"token"`
	Timestamp time.Time `yaml:"timestamp"`
}

// Session converts the stored form back to an in-memory session.
func (s *StoredSession) Session() Session {
	return Session{User: s.User, Token: s.Token}
}

// LoginRequest is the payload for POST /auth/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success payload of POST /auth/login/.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
