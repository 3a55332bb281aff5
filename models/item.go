package models

// Item is a named resource owned by exactly one user. Ownership changes only
// through a redeemed transfer capability.
type Item struct {
	// ID is the server-assigned identifier of the item.
	ID int64 `json:"id"`

	// Name is unique across all items.
	Name string `json:"name"`

	// OwnerID references the owning [User].
	OwnerID int64 `json:"owner_id"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}
