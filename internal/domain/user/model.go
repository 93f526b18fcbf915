package user

// Principal is the authenticated coach making requests.
type Principal struct {
	UserID string
	Email  string
}
