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

package classifier

import (
	"github.com/juju/collections/set"

	"github.com/NVIDIA/skugen/pkg/sku"
)

// EligibilitySet is the set of sizes allowed for one role.
type EligibilitySet struct {
	Role  sku.Role
	Names set.Strings
}

// Sorted returns the set's names in lexicographic order.
func (e EligibilitySet) Sorted() []string {
	return e.Names.SortedValues()
}

// Classify returns the names of every record satisfying t.
func Classify(catalog sku.Catalog, t sku.Threshold) set.Strings {
	out := set.NewStrings()
	for _, r := range catalog.Records() {
		if t.Allows(r) {
			out.Add(r.Name)
		}
	}
	return out
}

// ClassifyRoles classifies catalog once per role, preserving role order.
func ClassifyRoles(catalog sku.Catalog, roles []sku.Role) []EligibilitySet {
	out := make([]EligibilitySet, 0, len(roles))
	for _, role := range roles {
		out = append(out, EligibilitySet{
			Role:  role,
			Names: Classify(catalog, role.Threshold),
		})
	}
	return out
}

// StorageTiers maps each name to its storage tier.
func StorageTiers(names []string) (map[string]sku.StorageTier, error) {
	out := make(map[string]sku.StorageTier, len(names))
	for _, n := range names {
		tier, err := sku.StorageTierFor(n)
		if err != nil {
			return nil, err
		}
		out[n] = tier
	}
	return out, nil
}
