// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import "time"

// Inventory timeouts for Azure queries.
const (
	// InventoryRegionTimeout bounds the size listing of a single region.
	// A region that exceeds it is treated as unavailable and skipped.
	InventoryRegionTimeout = 2 * time.Minute

	// InventoryLocationsTimeout bounds the subscription location listing.
	InventoryLocationsTimeout = 1 * time.Minute

	// InventoryResourceSkusTimeout bounds the subscription-wide resource SKU listing.
	// The listing is large and paged, so it gets more room than a single region.
	InventoryResourceSkusTimeout = 5 * time.Minute
)

// Generate timeouts for full command runs.
const (
	// GenerateTimeout is the default overall deadline for the generate command.
	GenerateTimeout = 30 * time.Minute

	// FaultDomainTimeout is the default deadline for the fault-domains command.
	FaultDomainTimeout = 2 * time.Minute
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)
