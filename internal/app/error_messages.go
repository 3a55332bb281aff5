// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the item transfer API writes into
// response envelopes. Keeping them in one place keeps the wording identical
// across handlers and the client.
//
// Constants ending in Format take fmt verbs: the first %s is the subject
// ("Value", "Item", "User") where present, the last one the offending value.
package app

const (
	// MsgSuccess is the status message of every successful envelope.
	MsgSuccess = "Success"

	// MsgHello is the data of the root route.
	MsgHello = "None"

	// MsgDuplicateValueFormat is status code 1.
	MsgDuplicateValueFormat = "Value '%s' already exists"

	// MsgNoValueFoundFormat is status code 2.
	MsgNoValueFoundFormat = "Value '%s' not found"

	// MsgInvalidLoginPassword is status code 3.
	MsgInvalidLoginPassword = "Invalid username or password"

	// MsgInvalidToken is status code 4.
	MsgInvalidToken = "JWT token failed signature validation"

	// MsgTransferAlreadyRedeemed shares status code 4: a spent link is as
	// unusable as a forged one.
	MsgTransferAlreadyRedeemed = "Transfer link was already used"

	// MsgOwnershipFormat is status code 5.
	MsgOwnershipFormat = "%s '%s' is owned by another user"

	// MsgUnexpectedFormat is status code -1.
	MsgUnexpectedFormat = "Something went wrong: %v"
)

// Messages of 422 validation responses.
const (
	MsgFieldRequired   = "field required"
	MsgInvalidJSON     = "invalid JSON body"
	MsgInvalidInteger  = "value is not a valid integer"
	MsgInvalidString   = "str type expected"
	MsgInvalidDataType = "value has an invalid type"
	MsgInvalidData     = "invalid data provided"
)
