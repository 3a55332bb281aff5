package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-item-transfer/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// ItemRepository persists items and their current owner.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	FindItemByID(ctx context.Context, itemID int64) (models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	DeleteItem(ctx context.Context, itemID int64) error
	UpdateItemOwner(ctx context.Context, itemID, newOwnerID int64) (models.Item, error)
}

// TransferRepository applies redeemed transfers and keeps the redemption
// ledger.
type TransferRepository interface {
	// Redeem moves the item to the new owner and records the capability in
	// the ledger within one transaction. With singleUse set, a capability
	// already present in the ledger fails with ErrTransferAlreadyRedeemed
	// and nothing changes.
	Redeem(ctx context.Context, transfer models.Transfer, singleUse bool) (models.Item, error)
	// PruneRedemptions deletes ledger rows redeemed before the given time
	// and returns how many were removed.
	PruneRedemptions(ctx context.Context, before time.Time) (int64, error)
}
