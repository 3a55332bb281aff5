package models

import "time"

// Transfer describes a single ownership handoff as carried by a transfer
// capability: item ItemID goes to NewOwnerID. CapabilityID is the unique
// "jti" of the capability that authorised it.
type Transfer struct {
	CapabilityID string `json:"capability_id"`
	ItemID       int64  `json:"item_id"`
	NewOwnerID   int64  `json:"new_owner_id"`
}

// Redemption is a ledger entry recorded when a transfer capability is
// redeemed for the first time.
type Redemption struct {
	Transfer

	RedeemedAt time.Time `json:"redeemed_at"`
}

// TableName returns the name of the database table
// associated with the Redemption model.
func (r Redemption) TableName() string {
	return "transfer_redemptions"
}
