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

// Package sku holds the VM size data model shared by the inventory, classifier
// and render packages.
//
// A Record is one VM size as reported by the inventory. A Catalog is an
// immutable, name-keyed collection of records built by folding per-region
// listings together; the first record seen for a name wins and excluded
// names never enter. A Profile is the rule set that drives a generation run:
// which names are excluded, which records are pinned, which eligibility roles
// are emitted, which regions are supplemented, and how accelerated networking
// support is inferred.
//
// Two profiles are built in:
//
//	hardened  the default; drops promotional SKUs and emits the accelerated
//	          networking list
//	legacy    the earlier rule set; keeps promotional SKUs, skips regions
//	          known to fail, and emits only the allowed-size sections
package sku
