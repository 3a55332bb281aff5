// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the item transfer API.
//
// [ServerAdapter] hides the HTTP transport from the command line client. The
// envelope status codes the server answers with are mapped back to the
// sentinel errors of errors.go, so callers can use [errors.Is] (for example
// [ErrOwnership] for status 5).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-item-transfer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the item transfer server on behalf of one user.
type ServerAdapter interface {
	// SetToken stores the session token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored session token, or "" if none was set.
	Token() string

	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login authenticates and stores the returned session token via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID int64) error

	CreateItem(ctx context.Context, request models.CreateItemRequest) (models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	DeleteItem(ctx context.Context, itemID int64) error

	// SendItem starts a transfer and returns the redemption link.
	SendItem(ctx context.Context, request models.SendItemRequest) (string, error)

	// ReceiveItem redeems a transfer. link is either the full redemption URL
	// or the bare capability.
	ReceiveItem(ctx context.Context, link string) (models.Item, error)
}
