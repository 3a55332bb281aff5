// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-item-transfer/models"
)

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_Credentials(t *testing.T) {
	tests := []struct {
		name       string
		input      any
		wantFields []string
	}{
		{name: "valid", input: models.Credentials{Login: "alice", Password: "secret"}},
		{name: "valid pointer", input: &models.Credentials{Login: "alice", Password: " "}},
		{name: "missing both", input: models.Credentials{}, wantFields: []string{FieldLogin, FieldPassword}},
		{name: "blank login", input: models.Credentials{Login: "   ", Password: "x"}, wantFields: []string{FieldLogin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRequestValidator().Validate(context.Background(), tt.input)
			if tt.wantFields == nil {
				require.NoError(t, err)
				return
			}

			var errs FieldErrors
			require.ErrorAs(t, err, &errs)
			got := make([]string, 0, len(errs))
			for _, fe := range errs {
				got = append(got, fe.Field)
			}
			assert.Equal(t, tt.wantFields, got)
		})
	}
}

func TestValidate_CreateItemRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CreateItemRequest{Name: "lamp"}))
	assert.NoError(t, v.Validate(ctx, &models.CreateItemRequest{Name: "lamp", OwnerID: 3}))

	err := v.Validate(ctx, models.CreateItemRequest{OwnerID: -1})
	assert.ErrorIs(t, err, ErrFieldRequired)
	assert.ErrorIs(t, err, ErrNegativeID)
}

func TestValidate_SendItemRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.SendItemRequest{ID: 1, NewOwnerLogin: "bob"}))

	err := v.Validate(ctx, models.SendItemRequest{})
	assert.ErrorIs(t, err, ErrNonPositiveID)
	assert.ErrorIs(t, err, ErrFieldRequired)
	assert.Contains(t, err.Error(), "id: ensure this value is greater than 0")
}

func TestValidate_ScopedFields(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	// only the login is checked
	assert.NoError(t, v.Validate(ctx, models.Credentials{Login: "alice"}, FieldLogin))

	err := v.Validate(ctx, models.Credentials{Login: "alice"}, "email")
	assert.ErrorIs(t, err, ErrUnknownField)
}
