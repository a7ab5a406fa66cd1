package domain

// Session is the authenticated identity held for the duration of a login:
// the opaque bearer token issued by the backend plus the user profile
// returned alongside it.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Valid reports whether the session is usable. A token without a user, or a
// user without a token, counts as absent rather than as a broken session.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User.ID != ""
}
