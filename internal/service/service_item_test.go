package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/mock"
	"github.com/MKhiriev/go-item-transfer/internal/store"
	"github.com/MKhiriev/go-item-transfer/models"
)

func newTestItemService(t *testing.T) (ItemService, *mock.MockItemRepository) {
	items := mock.NewMockItemRepository(gomock.NewController(t))
	return NewItemService(items, logger.Nop()), items
}

func TestCreateItem_DefaultsOwnerToCaller(t *testing.T) {
	svc, items := newTestItemService(t)

	items.EXPECT().CreateItem(gomock.Any(), models.Item{Name: "lamp", OwnerID: 5}).
		Return(models.Item{ID: 1, Name: "lamp", OwnerID: 5}, nil)

	item, err := svc.CreateItem(context.Background(), 5, models.CreateItemRequest{Name: " lamp "})
	require.NoError(t, err)
	assert.Equal(t, int64(5), item.OwnerID)
}

func TestCreateItem_ExplicitOwner(t *testing.T) {
	svc, items := newTestItemService(t)

	items.EXPECT().CreateItem(gomock.Any(), models.Item{Name: "lamp", OwnerID: 9}).
		Return(models.Item{ID: 1, Name: "lamp", OwnerID: 9}, nil)

	_, err := svc.CreateItem(context.Background(), 5, models.CreateItemRequest{Name: "lamp", OwnerID: 9})
	require.NoError(t, err)
}

func TestCreateItem_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
		value   string
	}{
		{name: "duplicate", repoErr: store.ErrItemAlreadyExists, wantErr: ErrDuplicateValue, value: "lamp"},
		{name: "unknown owner", repoErr: store.ErrUserNotFound, wantErr: ErrNoValueFound, value: "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, items := newTestItemService(t)
			items.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(models.Item{}, tt.repoErr)

			_, err := svc.CreateItem(context.Background(), 5, models.CreateItemRequest{Name: "lamp", OwnerID: 9})
			require.ErrorIs(t, err, tt.wantErr)

			var valueErr *ValueError
			require.ErrorAs(t, err, &valueErr)
			assert.Equal(t, tt.value, valueErr.Value)
		})
	}
}

func TestCreateItem_BlankName(t *testing.T) {
	svc, _ := newTestItemService(t)

	_, err := svc.CreateItem(context.Background(), 5, models.CreateItemRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDeleteItem(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		svc, items := newTestItemService(t)
		gomock.InOrder(
			items.EXPECT().FindItemByID(gomock.Any(), int64(3)).Return(models.Item{ID: 3, OwnerID: 5}, nil),
			items.EXPECT().DeleteItem(gomock.Any(), int64(3)).Return(nil),
		)
		require.NoError(t, svc.DeleteItem(context.Background(), 5, 3))
	})

	t.Run("not the owner", func(t *testing.T) {
		svc, items := newTestItemService(t)
		items.EXPECT().FindItemByID(gomock.Any(), int64(3)).Return(models.Item{ID: 3, OwnerID: 6}, nil)
		assert.ErrorIs(t, svc.DeleteItem(context.Background(), 5, 3), ErrOwnership)
	})

	t.Run("missing", func(t *testing.T) {
		svc, items := newTestItemService(t)
		items.EXPECT().FindItemByID(gomock.Any(), int64(3)).Return(models.Item{}, store.ErrItemNotFound)
		assert.ErrorIs(t, svc.DeleteItem(context.Background(), 5, 3), ErrNoValueFound)
	})
}

func TestListItems(t *testing.T) {
	svc, items := newTestItemService(t)
	items.EXPECT().ListItems(gomock.Any()).Return([]models.Item{{ID: 1}}, nil)

	got, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
