package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/store"
	"github.com/MKhiriev/go-item-transfer/models"
)

type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

func (s *itemService) CreateItem(ctx context.Context, callerID int64, request models.CreateItemRequest) (models.Item, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return models.Item{}, ErrInvalidDataProvided
	}

	ownerID := request.OwnerID
	if ownerID == 0 {
		ownerID = callerID
	}

	item, err := s.itemRepository.CreateItem(ctx, models.Item{Name: name, OwnerID: ownerID})
	if err != nil {
		log.Err(err).Str("name", name).Int64("owner_id", ownerID).Msg("error creating item")
		switch {
		case errors.Is(err, store.ErrItemAlreadyExists):
			return models.Item{}, duplicateError(name, err)
		case errors.Is(err, store.ErrUserNotFound):
			return models.Item{}, notFoundError(ownerID, err)
		}
		return models.Item{}, fmt.Errorf("error creating item: %w", err)
	}

	return item, nil
}

func (s *itemService) ListItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.itemRepository.ListItems(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemService.ListItems").Msg("error listing items")
		return nil, fmt.Errorf("error listing items: %w", err)
	}
	return items, nil
}

// DeleteItem removes an item owned by the caller.
func (s *itemService) DeleteItem(ctx context.Context, callerID, itemID int64) error {
	log := logger.FromContext(ctx)

	item, err := s.itemRepository.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return notFoundError(itemID, err)
		}
		return fmt.Errorf("error finding item: %w", err)
	}

	if item.OwnerID != callerID {
		log.Warn().Int64("caller_id", callerID).Int64("item_id", itemID).Msg("attempt to delete another user's item")
		return ownershipError(SubjectItem, itemID)
	}

	if err := s.itemRepository.DeleteItem(ctx, itemID); err != nil {
		log.Err(err).Int64("item_id", itemID).Msg("error deleting item")
		if errors.Is(err, store.ErrItemNotFound) {
			return notFoundError(itemID, err)
		}
		return fmt.Errorf("error deleting item: %w", err)
	}

	return nil
}
