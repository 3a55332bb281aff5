package models

// TokenKind discriminates the two classes of signed token sharing one key.
// It travels in the "kind" claim and is checked before any other claim.
type TokenKind string

const (
	// SessionTokenKind marks a token proving an authenticated user.
	SessionTokenKind TokenKind = "session"

	// TransferTokenKind marks a one-time transfer capability.
	TransferTokenKind TokenKind = "transfer"
)

// Claim names used in issued tokens.
const (
	ClaimKind       = "kind"
	ClaimUserID     = "user_id"
	ClaimItemID     = "item_id"
	ClaimNewOwnerID = "new_owner_id"
	ClaimID         = "jti"
)

// Token is a signed, compact JWS together with the claims it carries.
type Token struct {
	// SignedString is the compact serialization (header.payload.signature).
	SignedString string `json:"-"`

	// Claims holds the decoded claim set. Numeric claims decode as
	// json.Number.
	Claims map[string]any `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// SessionClaims is the typed view of a verified session token.
type SessionClaims struct {
	UserID int64
}

// TransferClaims is the typed view of a verified transfer capability.
type TransferClaims struct {
	// ID is the unique capability identifier ("jti").
	ID         string
	ItemID     int64
	NewOwnerID int64
}

// Transfer converts the capability claims into the handoff they authorise.
func (c TransferClaims) Transfer() Transfer {
	return Transfer{
		CapabilityID: c.ID,
		ItemID:       c.ItemID,
		NewOwnerID:   c.NewOwnerID,
	}
}
