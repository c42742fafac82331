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

package inventory

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/NVIDIA/skugen/pkg/sku"
)

// Client lists the raw inventory of one subscription.
type Client interface {
	// ListLocations returns the names of all regions visible to the caller.
	ListLocations(ctx context.Context) ([]string, error)
	// ListSizes returns the VM sizes offered in location.
	ListSizes(ctx context.Context, location string) ([]sku.Record, error)
	// ListResourceSKUs returns every virtual machine resource SKU with its capabilities.
	ListResourceSKUs(ctx context.Context) ([]sku.Record, error)
}

// Source selects a Client implementation.
type Source string

const (
	SourceAzure Source = "azure"
	SourceCLI   Source = "cli"
)

// String returns the string representation of the Source.
func (s Source) String() string {
	return string(s)
}

// IsValid reports whether s names a supported source.
func (s Source) IsValid() bool {
	switch s {
	case SourceAzure, SourceCLI:
		return true
	default:
		return false
	}
}

// ParseSource converts a flag value into a Source.
func ParseSource(v string) (Source, error) {
	s := Source(strings.ToLower(strings.TrimSpace(v)))
	if !s.IsValid() {
		return "", fmt.Errorf("unknown inventory source %q, valid sources are: %s, %s", v, SourceAzure, SourceCLI)
	}
	return s, nil
}

// resourceTypeVirtualMachines is the resource SKU type carrying VM sizes.
const resourceTypeVirtualMachines = "virtualMachines"

// recordFromCapabilities builds a Record from a resource SKU's capability list.
// vCPUs and MaxResourceVolumeMB populate the numeric fields.
func recordFromCapabilities(name string, caps map[string]string) sku.Record {
	r := sku.NewRecord(name, atoi(caps[sku.CapabilityVCPUs]), atoi(caps[sku.CapabilityMaxResourceVolumeMB]))
	if len(caps) > 0 {
		r.Capabilities = caps
	}
	return r
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
