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

// Package defaults provides centralized configuration constants for the generator.
//
// This package defines timeout values, source locations, and output defaults
// used across the codebase.
//
// # Timeout Categories
//
//   - Inventory timeouts: For Azure control-plane and az CLI queries
//   - Generate timeouts: For a full fetch, classify and render run
//   - HTTP client timeouts: For fetching the fault-domain documentation table
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.InventoryRegionTimeout)
//	defer cancel()
package defaults
