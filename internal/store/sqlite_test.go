package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-item-transfer/internal/config"
	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/models"
)

// newSQLiteStorages opens a migrated in-memory SQLite database private to t.
func newSQLiteStorages(t *testing.T) (*DB, *Storages) {
	t.Helper()
	ctx := context.Background()

	db, err := NewDB(ctx, config.DB{DSN: "file:" + t.Name() + "?mode=memory&cache=shared"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(ctx))
	assert.Equal(t, DialectSQLite, db.Dialect())

	return db, NewStorages(db, logger.Nop())
}

func TestSQLite_TransferLifecycle(t *testing.T) {
	_, s := newSQLiteStorages(t)
	ctx := context.Background()

	alice, err := s.UserRepository.CreateUser(ctx, models.User{Login: "alice", Password: "h1"})
	require.NoError(t, err)
	bob, err := s.UserRepository.CreateUser(ctx, models.User{Login: "bob", Password: "h2"})
	require.NoError(t, err)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Login: "alice", Password: "again"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)

	lamp, err := s.ItemRepository.CreateItem(ctx, models.Item{Name: "lamp", OwnerID: alice.UserID})
	require.NoError(t, err)

	_, err = s.ItemRepository.CreateItem(ctx, models.Item{Name: "lamp", OwnerID: bob.UserID})
	assert.ErrorIs(t, err, ErrItemAlreadyExists)

	_, err = s.ItemRepository.CreateItem(ctx, models.Item{Name: "ghost", OwnerID: 999})
	assert.ErrorIs(t, err, ErrUserNotFound)

	transfer := models.Transfer{CapabilityID: "cap-lamp", ItemID: lamp.ID, NewOwnerID: bob.UserID}

	moved, err := s.TransferRepository.Redeem(ctx, transfer, true)
	require.NoError(t, err)
	assert.Equal(t, bob.UserID, moved.OwnerID)

	_, err = s.TransferRepository.Redeem(ctx, transfer, true)
	assert.ErrorIs(t, err, ErrTransferAlreadyRedeemed)

	again, err := s.TransferRepository.Redeem(ctx, transfer, false)
	require.NoError(t, err)
	assert.Equal(t, bob.UserID, again.OwnerID)

	removed, err := s.TransferRepository.PruneRedemptions(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestSQLite_DeleteUserCascadesToItems(t *testing.T) {
	_, s := newSQLiteStorages(t)
	ctx := context.Background()

	alice, err := s.UserRepository.CreateUser(ctx, models.User{Login: "alice", Password: "h"})
	require.NoError(t, err)
	item, err := s.ItemRepository.CreateItem(ctx, models.Item{Name: "book", OwnerID: alice.UserID})
	require.NoError(t, err)

	require.NoError(t, s.UserRepository.DeleteUser(ctx, alice.UserID))

	_, err = s.ItemRepository.FindItemByID(ctx, item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)

	users, err := s.UserRepository.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestSQLite_RedeemMissingItem(t *testing.T) {
	_, s := newSQLiteStorages(t)
	ctx := context.Background()

	bob, err := s.UserRepository.CreateUser(ctx, models.User{Login: "bob", Password: "h"})
	require.NoError(t, err)

	_, err = s.TransferRepository.Redeem(ctx, models.Transfer{CapabilityID: "c", ItemID: 42, NewOwnerID: bob.UserID}, false)
	assert.ErrorIs(t, err, ErrItemNotFound)
}
