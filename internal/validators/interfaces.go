// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of decoded API requests before they
// reach the service layer.
//
// A Validator reports every invalid field of a request as [FieldErrors], so
// the transport layer can answer with one complete list of problems.
package validators

import "context"

// Validator validates the provided input and optionally restricts validation
// to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
