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

package sku

import (
	"fmt"
	"strings"

	"github.com/juju/naturalsort"

	"github.com/NVIDIA/skugen/pkg/errors"
)

// StorageTier is the storage account type paired with a VM size.
type StorageTier string

const (
	StorageTierPremium  StorageTier = "Premium_LRS"
	StorageTierStandard StorageTier = "Standard_LRS"
)

// String returns the string representation of the StorageTier.
func (t StorageTier) String() string {
	return string(t)
}

// StorageTierFor derives the tier from the second underscore-delimited
// segment of name: an 's' in either case means premium.
func StorageTierFor(name string) (StorageTier, error) {
	parts := strings.Split(name, "_")
	if len(parts) < 2 {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("size name %q has no capability segment", name),
			map[string]any{"name": name})
	}
	if strings.ContainsAny(parts[1], "sS") {
		return StorageTierPremium, nil
	}
	return StorageTierStandard, nil
}

// SortNatural returns a sorted copy of names in which digit runs compare by
// numeric value, so "Standard_D2" sorts before "Standard_D10".
func SortNatural(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return naturalsort.Sort(out)
}
