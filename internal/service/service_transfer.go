// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-item-transfer/internal/config"
	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/metrics"
	"github.com/MKhiriev/go-item-transfer/internal/store"
	"github.com/MKhiriev/go-item-transfer/models"
)

// RedeemPath is the route prefix of redemption links.
const RedeemPath = "/get/"

// transferService implements the capability based handoff. It keeps no
// state of its own: ownership is re-read from storage on every call and the
// only write is the final owner update.
type transferService struct {
	userRepository     store.UserRepository
	itemRepository     store.ItemRepository
	transferRepository store.TransferRepository
	tokens             TokenService

	publicURL string
	singleUse bool

	logger *logger.Logger
}

func NewTransferService(
	userRepository store.UserRepository,
	itemRepository store.ItemRepository,
	transferRepository store.TransferRepository,
	tokens TokenService,
	cfg config.App,
	logger *logger.Logger,
) TransferService {
	return &transferService{
		userRepository:     userRepository,
		itemRepository:     itemRepository,
		transferRepository: transferRepository,
		tokens:             tokens,
		publicURL:          cfg.PublicURL,
		singleUse:          cfg.SingleUseTransfers,
		logger:             logger,
	}
}

// InitiateTransfer runs the send phase. Checks stop at the first failure:
// session token, item existence, caller ownership, recipient existence.
func (s *transferService) InitiateTransfer(ctx context.Context, sessionToken string, itemID int64, recipientLogin string) (_ string, err error) {
	defer func() { metrics.RecordTransfer(metrics.PhaseInitiate, outcome(err)) }()
	log := logger.FromContext(ctx).With().Str("func", "*transferService.InitiateTransfer").Int64("item_id", itemID).Logger()

	session, err := s.tokens.ParseSessionToken(sessionToken)
	if err != nil {
		return "", err
	}

	item, err := s.itemRepository.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return "", notFoundError(itemID, err)
		}
		log.Err(err).Msg("error reading item")
		return "", fmt.Errorf("error reading item: %w", err)
	}

	if item.OwnerID != session.UserID {
		log.Warn().Int64("caller_id", session.UserID).Int64("owner_id", item.OwnerID).Msg("caller does not own the item")
		return "", ownershipError(SubjectItem, itemID)
	}

	recipient, err := s.userRepository.FindUserByLogin(ctx, recipientLogin)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", notFoundError(recipientLogin, err)
		}
		log.Err(err).Msg("error reading recipient")
		return "", fmt.Errorf("error reading recipient: %w", err)
	}

	capability, err := s.tokens.IssueTransferCapability(itemID, recipient.UserID)
	if err != nil {
		log.Err(err).Msg("error issuing transfer capability")
		return "", err
	}

	log.Info().Int64("new_owner_id", recipient.UserID).Msg("transfer initiated")

	return s.publicURL + RedeemPath + url.PathEscape(capability.String()), nil
}

// RedeemTransfer runs the receive phase. Checks stop at the first failure:
// session token, capability, recipient identity, item existence. Only then is
// the owner updated.
func (s *transferService) RedeemTransfer(ctx context.Context, sessionToken, capability string) (_ models.Item, err error) {
	defer func() { metrics.RecordTransfer(metrics.PhaseRedeem, outcome(err)) }()
	log := logger.FromContext(ctx).With().Str("func", "*transferService.RedeemTransfer").Logger()

	session, err := s.tokens.ParseSessionToken(sessionToken)
	if err != nil {
		return models.Item{}, err
	}

	claims, err := s.tokens.ParseTransferCapability(capability)
	if err != nil {
		return models.Item{}, err
	}

	if session.UserID != claims.NewOwnerID {
		log.Warn().Int64("caller_id", session.UserID).Int64("new_owner_id", claims.NewOwnerID).Msg("caller is not the designated recipient")
		return models.Item{}, ownershipError(SubjectItem, claims.ItemID)
	}

	if _, err = s.itemRepository.FindItemByID(ctx, claims.ItemID); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return models.Item{}, notFoundError(claims.ItemID, err)
		}
		log.Err(err).Msg("error reading item")
		return models.Item{}, fmt.Errorf("error reading item: %w", err)
	}

	item, err := s.transferRepository.Redeem(ctx, claims.Transfer(), s.singleUse)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrTransferAlreadyRedeemed):
			return models.Item{}, fmt.Errorf("%w: %s", ErrTransferAlreadyRedeemed, claims.ID)
		case errors.Is(err, store.ErrItemNotFound):
			return models.Item{}, notFoundError(claims.ItemID, err)
		case errors.Is(err, store.ErrUserNotFound):
			return models.Item{}, notFoundError(claims.NewOwnerID, err)
		}
		log.Err(err).Msg("error redeeming transfer")
		return models.Item{}, fmt.Errorf("error redeeming transfer: %w", err)
	}

	log.Info().Int64("item_id", item.ID).Int64("new_owner_id", item.OwnerID).Msg("transfer redeemed")

	return item, nil
}

// outcome is the metrics label for a transfer result.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, ErrOwnership):
		return "ownership"
	case errors.Is(err, ErrNoValueFound):
		return "not_found"
	case errors.Is(err, ErrTransferAlreadyRedeemed):
		return "already_redeemed"
	default:
		return "error"
	}
}
