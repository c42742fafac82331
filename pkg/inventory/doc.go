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

// Package inventory queries Azure for regions and VM sizes and folds the
// per-region listings into a single catalog.
//
// Three Client implementations are provided:
//
//   - AzureClient talks to the Azure Resource Manager through the Azure SDK.
//   - CLIClient shells out to the az CLI, using whatever login the CLI holds.
//   - SnapshotClient replays a previously captured Snapshot for offline runs.
//
// The Fetcher drives a Client sequentially under a Profile. A region whose
// size listing fails is logged, counted and skipped; every other failure
// aborts the fetch.
//
//	f := inventory.NewFetcher(client, sku.Hardened())
//	catalog, err := f.FetchAllSkus(ctx)
package inventory
