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
	"regexp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/NVIDIA/skugen/pkg/errors"
)

// Threshold is a minimum-resource predicate. A zero MinDiskMB checks cores only.
type Threshold struct {
	MinCores  int `json:"minCores" yaml:"minCores"`
	MinDiskMB int `json:"minDiskMb,omitempty" yaml:"minDiskMb,omitempty"`
}

// Allows reports whether r satisfies the threshold.
func (t Threshold) Allows(r Record) bool {
	if r.Cores < t.MinCores {
		return false
	}
	return t.MinDiskMB == 0 || r.EphemeralDiskMB >= t.MinDiskMB
}

// Role is a deployment role whose allowed sizes are rendered as one function.
type Role struct {
	Name      string    `json:"name" yaml:"name"`
	FuncName  string    `json:"funcName" yaml:"funcName"`
	Doc       string    `json:"doc" yaml:"doc"`
	Threshold Threshold `json:"threshold" yaml:"threshold"`
	// AfterSizeMap places the function after GetSizeMap in the rendered file.
	AfterSizeMap bool `json:"afterSizeMap,omitempty" yaml:"afterSizeMap,omitempty"`
	// SizeMapFunc, when set, names a storage map over this role's sizes
	// rendered right after its allowed function.
	SizeMapFunc string `json:"sizeMapFunc,omitempty" yaml:"sizeMapFunc,omitempty"`
}

// AccelerationRule infers accelerated networking support for names matching
// Pattern with at least MinCores vCPUs.
type AccelerationRule struct {
	Pattern  *regexp.Regexp
	MinCores int
}

// Matches reports whether the rule admits r.
func (a AccelerationRule) Matches(r Record) bool {
	return a.Pattern.MatchString(r.Name) && r.Cores >= a.MinCores
}

// Profile is the rule set for one generation run.
type Profile struct {
	Name string

	// License prepends the Microsoft MIT header to the rendered file.
	License bool

	// ExcludedPrefixes are matched against the first underscore-delimited segment.
	ExcludedPrefixes []string
	// ExcludedSuffixes are matched against the end of the full name.
	ExcludedSuffixes []string

	// Pinned records are inserted when the inventory does not report them.
	Pinned []Record

	Roles []Role
	// StorageRole names the role whose sizes make up the storage tier map.
	StorageRole string

	// SupplementalRegions are merged and sorted with the API regions.
	SupplementalRegions []string
	// TrailingRegions are appended verbatim after the sorted region list.
	TrailingRegions []string
	// SkipRegions are never queried for sizes.
	SkipRegions []string

	Accelerated            bool
	AcceleratedPrefix      string
	AccelerationCapability string
	AccelerationRules      []AccelerationRule
	Grandfathered          []string
}

// Excluded reports whether name must never enter the catalog.
func (p *Profile) Excluded(name string) bool {
	first, _, _ := strings.Cut(name, "_")
	if slices.Contains(p.ExcludedPrefixes, first) {
		return true
	}
	for _, s := range p.ExcludedSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// Role returns the role called name.
func (p *Profile) Role(name string) (Role, bool) {
	for _, r := range p.Roles {
		if r.Name == name {
			return r, true
		}
	}
	return Role{}, false
}

// Skipped reports whether location is never queried under this profile.
func (p *Profile) Skipped(location string) bool {
	return slices.Contains(p.SkipRegions, location)
}

// Profile names.
const (
	ProfileHardened = "hardened"
	ProfileLegacy   = "legacy"
)

// Master thresholds. Pinned accelerator sizes carry exactly these values.
const (
	MasterMinCores  = 2
	MasterMinDiskMB = 16384
)

var (
	chinaRegions = []string{"chinanorth", "chinaeast", "chinanorth2", "chinaeast2"}

	supplementalRegions = slices.Concat(chinaRegions, []string{
		"centraluseuap",
		"eastus2euap",
		"usdodcentral",
		"usdodeast",
	})

	trailingRegions = []string{
		"chinaeast",
		"chinanorth",
		"chinanorth2",
		"chinaeast2",
		"germanycentral",
		"germanynortheast",
		"usgovvirginia",
		"usgoviowa",
		"usgovarizona",
		"usgovtexas",
		"francecentral",
	}

	pinnedRecords = []Record{
		NewRecord("Standard_PB12s", MasterMinCores, MasterMinDiskMB),
		NewRecord("Standard_PB24s", MasterMinCores, MasterMinDiskMB),
		NewRecord("Standard_PB6s", MasterMinCores, MasterMinDiskMB),
	}

	grandfathered = []string{
		"AZAP_Performance_ComputeV17C",
		"SQLGL",
		"SQLGLCore",
		"Standard_D12_v2_ABC",
		"Standard_D13_v2_ABC",
		"Standard_D14_v2_ABC",
		"Standard_D15_v2_ABC",
		"Standard_D32-16s_v3",
		"Standard_D32-8s_v3",
		"Standard_D3_v2_ABC",
		"Standard_D40_v3",
		"Standard_D40s_v3",
		"Standard_D4_v2_ABC",
		"Standard_D5_v2_ABC",
		"Standard_D64-16s_v3",
		"Standard_D64-32s_v3",
		"Standard_E32-16_v3",
		"Standard_F16_ABC",
		"Standard_F4_ABC",
		"Standard_F8_ABC",
		"Standard_L96s_v2",
	}

	// D/DSv2 and F/Fs with 2+ vCPUs; hyperthreaded D/Dsv3, E/Esv3, Fsv2, Lsv2,
	// Ms/Mms and Ms/Mmsv2 with 4+ vCPUs.
	accelerationRules = []AccelerationRule{
		{Pattern: regexp.MustCompile(`^Standard_(DS\d+?.*v2|F)`), MinCores: 2},
		{Pattern: regexp.MustCompile(`^Standard_([DE]\d+s?.*v3|[FL]\d+s.*v2|M\d+s?.*(v2)?)`), MinCores: 4},
	}
)

// Hardened returns the default profile.
func Hardened() *Profile {
	return &Profile{
		Name:             ProfileHardened,
		License:          true,
		ExcludedPrefixes: []string{"Basic"},
		ExcludedSuffixes: []string{"Promo"},
		Pinned:           slices.Clone(pinnedRecords),
		Roles: []Role{
			{
				Name:      "dcos-master",
				FuncName:  "GetDCOSMasterAllowedSizes",
				Doc:       "returns the master allowed sizes",
				Threshold: Threshold{MinCores: MasterMinCores, MinDiskMB: MasterMinDiskMB},
			},
			{
				Name:     "kubernetes-agent",
				FuncName: "GetKubernetesAllowedVMSKUs",
				Doc:      "returns the allowed sizes for Kubernetes agent",
			},
		},
		StorageRole:            "kubernetes-agent",
		SupplementalRegions:    slices.Clone(supplementalRegions),
		TrailingRegions:        slices.Clone(trailingRegions),
		Accelerated:            true,
		AcceleratedPrefix:      "Standard",
		AccelerationCapability: CapabilityAcceleratedNetworking,
		AccelerationRules:      slices.Clone(accelerationRules),
		Grandfathered:          slices.Clone(grandfathered),
	}
}

// Legacy returns the earlier rule set.
func Legacy() *Profile {
	return &Profile{
		Name:             ProfileLegacy,
		ExcludedPrefixes: []string{"Basic"},
		Roles: []Role{
			{
				Name:      "master",
				FuncName:  "GetMasterAgentAllowedSizes",
				Doc:       "returns the agent allowed sizes",
				Threshold: Threshold{MinCores: 1},
			},
			{
				Name:     "kubernetes-agent",
				FuncName: "GetKubernetesAgentAllowedSizes",
				Doc:      "returns the allowed sizes for Kubernetes agent",
			},
			{
				Name:         "classic",
				FuncName:     "GetClassicAllowedSizes",
				Doc:          "returns the classic allowed sizes",
				AfterSizeMap: true,
				SizeMapFunc:  "GetClassicSizeMap",
			},
		},
		StorageRole:         "kubernetes-agent",
		SupplementalRegions: slices.Concat(chinaRegions, []string{"centraluseuap", "eastus2euap"}),
		TrailingRegions:     slices.Clone(trailingRegions),
		SkipRegions:         []string{"francesouth", "australiacentral", "australiacentral2"},
	}
}

var profiles = map[string]func() *Profile{
	ProfileHardened: Hardened,
	ProfileLegacy:   Legacy,
}

// ProfileNames returns the built-in profile names in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// LookupProfile returns the built-in profile called name.
// An unknown name yields ErrCodeNotFound with the closest known name suggested.
func LookupProfile(name string) (*Profile, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if f, ok := profiles[key]; ok {
		return f(), nil
	}
	return nil, errors.NewWithContext(errors.ErrCodeNotFound,
		fmt.Sprintf("unknown profile %q, did you mean %q?", name, closest(key, ProfileNames())),
		map[string]any{"profile": name, "supported": ProfileNames()})
}

func closest(name string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
