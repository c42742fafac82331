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
	"strings"

	"github.com/juju/collections/set"

	"github.com/NVIDIA/skugen/pkg/sku"
)

// AccelerationClassifier decides accelerated networking support per size.
type AccelerationClassifier struct {
	capability    string
	rules         []sku.AccelerationRule
	grandfathered set.Strings
}

// NewAccelerationClassifier builds a classifier from the profile's
// capability name, inference rules and grandfathered names.
func NewAccelerationClassifier(p *sku.Profile) *AccelerationClassifier {
	return &AccelerationClassifier{
		capability:    p.AccelerationCapability,
		rules:         p.AccelerationRules,
		grandfathered: set.NewStrings(p.Grandfathered...),
	}
}

// IsAccelerationEligible reports whether r supports accelerated networking.
// Grandfathered names always do. Otherwise an explicit capability value is
// authoritative, and only in its absence are the family rules consulted.
func (c *AccelerationClassifier) IsAccelerationEligible(r sku.Record) bool {
	if c.grandfathered.Contains(r.Name) {
		return true
	}
	if c.capability != "" {
		if v, ok := r.Capability(c.capability); ok {
			return strings.EqualFold(strings.TrimSpace(v), "true")
		}
	}
	for _, rule := range c.rules {
		if rule.Matches(r) {
			return true
		}
	}
	return false
}

// AcceleratedSet returns the eligible names among records unioned with the
// grandfathered names, deduplicated and natural-sorted.
func (c *AccelerationClassifier) AcceleratedSet(records []sku.Record) []string {
	out := set.NewStrings(c.grandfathered.Values()...)
	for _, r := range records {
		if c.IsAccelerationEligible(r) {
			out.Add(r.Name)
		}
	}
	return sku.SortNatural(out.Values())
}
