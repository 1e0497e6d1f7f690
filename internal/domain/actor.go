package domain

// Actor is the authenticated caller as seen by services.
type Actor struct {
	UserID string
	Email  string
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}
