package store

import "github.com/MKhiriev/go-item-transfer/internal/logger"

// Storages bundles the repositories handed to the service layer.
type Storages struct {
	UserRepository     UserRepository
	ItemRepository     ItemRepository
	TransferRepository TransferRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		ItemRepository:     NewItemRepository(db, log),
		TransferRepository: NewTransferRepository(db, log),
	}
}
