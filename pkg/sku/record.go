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
	"maps"
	"slices"
	"sort"
)

// Well-known capability names reported by the resource SKU API.
const (
	CapabilityVCPUs                 = "vCPUs"
	CapabilityMaxResourceVolumeMB   = "MaxResourceVolumeMB"
	CapabilityAcceleratedNetworking = "AcceleratedNetworkingEnabled"
)

// Record is a single VM size.
type Record struct {
	Name            string            `json:"name" yaml:"name"`
	Cores           int               `json:"numberOfCores" yaml:"numberOfCores"`
	EphemeralDiskMB int               `json:"resourceDiskSizeInMb" yaml:"resourceDiskSizeInMb"`
	Capabilities    map[string]string `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
}

// NewRecord returns a Record with negative resource values clamped to zero.
func NewRecord(name string, cores, diskMB int) Record {
	return Record{
		Name:            name,
		Cores:           max(cores, 0),
		EphemeralDiskMB: max(diskMB, 0),
	}
}

// Capability returns the named capability value and whether it was reported.
func (r Record) Capability(name string) (string, bool) {
	v, ok := r.Capabilities[name]
	return v, ok
}

// Catalog is an immutable set of records keyed by name.
// The zero value is an empty catalog.
type Catalog struct {
	records map[string]Record
}

// NewCatalog returns an empty catalog.
func NewCatalog() Catalog {
	return Catalog{}
}

// Merge returns a new catalog holding the receiver's records plus every
// record whose name is neither already present nor excluded. Within records
// the first occurrence of a name wins. The receiver is left untouched.
func (c Catalog) Merge(records []Record, exclude func(string) bool) Catalog {
	next := c.clone(len(records))
	for _, r := range records {
		if r.Name == "" {
			continue
		}
		if _, ok := next[r.Name]; ok {
			continue
		}
		if exclude != nil && exclude(r.Name) {
			continue
		}
		r.Cores = max(r.Cores, 0)
		r.EphemeralDiskMB = max(r.EphemeralDiskMB, 0)
		next[r.Name] = r
	}
	return Catalog{records: next}
}

// WithPinned returns a new catalog that also holds each pinned record whose
// name is not yet present. Existing records are never replaced.
func (c Catalog) WithPinned(pinned []Record) Catalog {
	return c.Merge(pinned, nil)
}

func (c Catalog) clone(extra int) map[string]Record {
	m := make(map[string]Record, len(c.records)+extra)
	maps.Copy(m, c.records)
	return m
}

// Get returns the record for name.
func (c Catalog) Get(name string) (Record, bool) {
	r, ok := c.records[name]
	return r, ok
}

// Has reports whether name is in the catalog.
func (c Catalog) Has(name string) bool {
	_, ok := c.records[name]
	return ok
}

// Len returns the number of records.
func (c Catalog) Len() int {
	return len(c.records)
}

// Names returns all record names in lexicographic order.
func (c Catalog) Names() []string {
	names := slices.Collect(maps.Keys(c.records))
	sort.Strings(names)
	return names
}

// Records returns all records ordered by name.
func (c Catalog) Records() []Record {
	names := c.Names()
	out := make([]Record, 0, len(names))
	for _, n := range names {
		out = append(out, c.records[n])
	}
	return out
}
