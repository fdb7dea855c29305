package models

// Session is one authentication session. The ID is the opaque bearer token
// handed to the client. EndedAt is empty while the session is active and,
// once set, is never reset.
type Session struct {
	ID        string `json:"id"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at,omitempty"`
}

// Active reports whether the session has not been ended.
func (s *Session) Active() bool {
	return s.EndedAt == ""
}
