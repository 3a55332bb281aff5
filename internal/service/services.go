package service

import (
	"github.com/MKhiriev/go-item-transfer/internal/config"
	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/store"
)

type Services struct {
	TokenService    TokenService
	AuthService     AuthService
	UserService     UserService
	ItemService     ItemService
	TransferService TransferService
}

// NewServices wires every service to the given storages. Nothing is shared
// between services except the stateless token service.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	tokens := NewTokenService(cfg, logger)

	return &Services{
		TokenService: tokens,
		AuthService:  NewAuthService(storages.UserRepository, tokens, logger),
		UserService:  NewUserService(storages.UserRepository, logger),
		ItemService:  NewItemService(storages.ItemRepository, logger),
		TransferService: NewTransferService(
			storages.UserRepository,
			storages.ItemRepository,
			storages.TransferRepository,
			tokens,
			cfg,
			logger,
		),
	}
}
