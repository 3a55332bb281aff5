package models

// User represents a registered principal. Only the numeric UserID takes part
// in token claims; Login is the public handle other users address transfers to.
type User struct {
	// UserID is the server-assigned identifier of the user.
	UserID int64 `json:"id"`

	// Login is the unique user login.
	Login string `json:"login"`

	// Password holds the plain-text password on the way in and the Argon2id
	// hash once loaded from storage. It is never rendered to clients.
	Password string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
