// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-item-transfer/internal/config"
	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/utils"
	"github.com/MKhiriev/go-item-transfer/models"
)

const claimIssuer = "iss"

// idGenerator produces capability ids.
type idGenerator interface {
	Generate() string
}

// tokenService is the HS256 implementation of [TokenService]. Session tokens
// and transfer capabilities share the key and are told apart by the "kind"
// claim.
type tokenService struct {
	signKey          string
	issuer           string
	tokenDuration    time.Duration
	transferDuration time.Duration

	ids idGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService builds a [TokenService] from the App config section. Zero
// durations issue tokens without "exp".
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:          cfg.TokenSignKey,
		issuer:           cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		transferDuration: cfg.TransferDuration,
		ids:              utils.NewUUIDGenerator(),
		now:              time.Now,
		logger:           logger,
	}
}

func (s *tokenService) Issue(claims map[string]any) (string, error) {
	if s.issuer != "" {
		if _, ok := claims[claimIssuer]; !ok {
			withIssuer := make(map[string]any, len(claims)+1)
			for k, v := range claims {
				withIssuer[k] = v
			}
			withIssuer[claimIssuer] = s.issuer
			claims = withIssuer
		}
	}

	token, err := utils.SignClaims(claims, s.signKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *tokenService) Verify(token string, requiredKeys ...string) (map[string]any, error) {
	claims, err := utils.ParseClaims(token, s.signKey, s.issuer, requiredKeys...)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *tokenService) Validate(token string) error {
	_, err := s.Verify(token)
	return err
}

func (s *tokenService) IssueSessionToken(userID int64) (models.Token, error) {
	claims := map[string]any{
		models.ClaimKind:   string(models.SessionTokenKind),
		models.ClaimUserID: userID,
	}
	s.expireAfter(claims, s.tokenDuration)

	return s.issueToken(claims)
}

func (s *tokenService) ParseSessionToken(token string) (models.SessionClaims, error) {
	claims, err := s.verifyKind(token, models.SessionTokenKind, models.ClaimUserID)
	if err != nil {
		return models.SessionClaims{}, err
	}

	userID, err := utils.ClaimInt64(claims, models.ClaimUserID)
	if err != nil {
		return models.SessionClaims{}, ErrInvalidToken
	}

	return models.SessionClaims{UserID: userID}, nil
}

func (s *tokenService) IssueTransferCapability(itemID, newOwnerID int64) (models.Token, error) {
	claims := map[string]any{
		models.ClaimKind:       string(models.TransferTokenKind),
		models.ClaimID:         s.ids.Generate(),
		models.ClaimItemID:     itemID,
		models.ClaimNewOwnerID: newOwnerID,
	}
	s.expireAfter(claims, s.transferDuration)

	return s.issueToken(claims)
}

func (s *tokenService) ParseTransferCapability(token string) (models.TransferClaims, error) {
	claims, err := s.verifyKind(token, models.TransferTokenKind, models.ClaimID, models.ClaimItemID, models.ClaimNewOwnerID)
	if err != nil {
		return models.TransferClaims{}, err
	}

	id, err := utils.ClaimString(claims, models.ClaimID)
	if err != nil || id == "" {
		return models.TransferClaims{}, ErrInvalidToken
	}
	itemID, err := utils.ClaimInt64(claims, models.ClaimItemID)
	if err != nil {
		return models.TransferClaims{}, ErrInvalidToken
	}
	newOwnerID, err := utils.ClaimInt64(claims, models.ClaimNewOwnerID)
	if err != nil {
		return models.TransferClaims{}, ErrInvalidToken
	}

	return models.TransferClaims{ID: id, ItemID: itemID, NewOwnerID: newOwnerID}, nil
}

// verifyKind verifies the token and rejects it unless its "kind" claim is
// kind. The kind is checked before any other claim is read.
func (s *tokenService) verifyKind(token string, kind models.TokenKind, requiredKeys ...string) (map[string]any, error) {
	claims, err := s.Verify(token, append([]string{models.ClaimKind}, requiredKeys...)...)
	if err != nil {
		return nil, err
	}

	got, err := utils.ClaimString(claims, models.ClaimKind)
	if err != nil || models.TokenKind(got) != kind {
		s.logger.Debug().Str("func", "*tokenService.verifyKind").
			Str("want", string(kind)).
			Str("got", got).
			Msg("token kind mismatch")
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *tokenService) expireAfter(claims map[string]any, d time.Duration) {
	if d > 0 {
		claims["exp"] = s.now().Add(d).Unix()
	}
}

func (s *tokenService) issueToken(claims map[string]any) (models.Token, error) {
	signed, err := s.Issue(claims)
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{SignedString: signed, Claims: claims}, nil
}
