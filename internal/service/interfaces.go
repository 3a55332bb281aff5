package service

import (
	"context"

	"github.com/MKhiriev/go-item-transfer/models"
)

// TokenService signs and verifies claim sets with the process-wide key. It
// is pure: no storage and no clock beyond expiry checks.
type TokenService interface {
	// Issue signs claims as an HS256 JWS.
	Issue(claims map[string]any) (string, error)
	// Verify checks the signature and that every required key is present.
	// Every failure is [ErrInvalidToken].
	Verify(token string, requiredKeys ...string) (map[string]any, error)
	// Validate is Verify without required keys, discarding the claims.
	Validate(token string) error

	IssueSessionToken(userID int64) (models.Token, error)
	ParseSessionToken(token string) (models.SessionClaims, error)
	IssueTransferCapability(itemID, newOwnerID int64) (models.Token, error)
	ParseTransferCapability(token string) (models.TransferClaims, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	// Login checks credentials and returns a session token.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	// DeleteUser removes userID; callerID must be the same user.
	DeleteUser(ctx context.Context, callerID, userID int64) error
}

type ItemService interface {
	// CreateItem creates an item; a zero OwnerID means the caller.
	CreateItem(ctx context.Context, callerID int64, request models.CreateItemRequest) (models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	// DeleteItem removes itemID; callerID must own it.
	DeleteItem(ctx context.Context, callerID, itemID int64) error
}

// TransferService implements the two-phase handoff of an item between users.
type TransferService interface {
	// InitiateTransfer checks that the session holder owns itemID and returns
	// the redemption URL carrying a capability for recipientLogin.
	InitiateTransfer(ctx context.Context, sessionToken string, itemID int64, recipientLogin string) (string, error)
	// RedeemTransfer moves the item named by capability to the session
	// holder, who must be its designated recipient.
	RedeemTransfer(ctx context.Context, sessionToken, capability string) (models.Item, error)
}
