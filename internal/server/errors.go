// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means there is neither a router nor an address to
// serve it on.
var errNoServersAreCreated = errors.New("no servers are created: http handler or address missing")
