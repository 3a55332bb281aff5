package models

// Credentials is the body of /registration and /login.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// CreateItemRequest is the body of /items/new. A zero OwnerID means the
// item is created for the caller.
type CreateItemRequest struct {
	Name    string `json:"name"`
	OwnerID int64  `json:"owner_id"`
}

// SendItemRequest is the body of /send.
type SendItemRequest struct {
	ID            int64  `json:"id"`
	NewOwnerLogin string `json:"new_owner_login"`
}
