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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/skugen/pkg/sku"
)

func withCapability(r sku.Record, name, value string) sku.Record {
	r.Capabilities = map[string]string{name: value}
	return r
}

func TestExplicitCapabilityOverridesInference(t *testing.T) {
	c := NewAccelerationClassifier(sku.Hardened())

	records := []sku.Record{
		sku.NewRecord("Standard_DS2_v2", 2, 0),
		sku.NewRecord("Standard_D64s_v3", 64, 0),
		sku.NewRecord("Standard_A1", 1, 0),
		sku.NewRecord("Standard_B1s", 1, 0),
		sku.NewRecord("Standard_F2", 0, 0),
		sku.NewRecord("Standard_NV6", 6, 0),
	}

	for _, r := range records {
		for _, value := range []string{"True", "true", "TRUE", "False", "false"} {
			t.Run(r.Name+"/"+value, func(t *testing.T) {
				want := value == "True" || value == "true" || value == "TRUE"
				got := c.IsAccelerationEligible(withCapability(r, sku.CapabilityAcceleratedNetworking, value))
				assert.Equal(t, want, got)
			})
		}
	}
}

func TestGrandfatheredAlwaysEligible(t *testing.T) {
	p := sku.Hardened()
	c := NewAccelerationClassifier(p)

	for _, name := range p.Grandfathered {
		t.Run(name, func(t *testing.T) {
			assert.True(t, c.IsAccelerationEligible(sku.NewRecord(name, 0, 0)))
			assert.True(t, c.IsAccelerationEligible(
				withCapability(sku.NewRecord(name, 0, 0), sku.CapabilityAcceleratedNetworking, "False")))
		})
	}
}

func TestFamilyInference(t *testing.T) {
	c := NewAccelerationClassifier(sku.Hardened())

	tests := []struct {
		name  string
		cores int
		want  bool
	}{
		{"Standard_DS2_v2", 2, true},
		{"Standard_DS1_v2", 1, false},
		{"Standard_F2", 2, true},
		{"Standard_F1", 1, false},
		{"Standard_F4s", 4, true},
		{"Standard_D4_v3", 4, true},
		{"Standard_D2_v3", 2, false},
		{"Standard_E8s_v3", 8, true},
		{"Standard_F8s_v2", 8, true},
		{"Standard_L16s_v2", 16, true},
		{"Standard_M128ms", 128, true},
		{"Standard_M8ms", 8, true},
		{"Standard_A8_v2", 8, false},
		{"Standard_NC24", 24, false},
		{"Standard_D2_v2", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsAccelerationEligible(sku.NewRecord(tt.name, tt.cores, 0)))
		})
	}
}

func TestOtherCapabilitiesDoNotCount(t *testing.T) {
	c := NewAccelerationClassifier(sku.Hardened())
	r := withCapability(sku.NewRecord("Standard_A2", 2, 0), "PremiumIO", "True")
	assert.False(t, c.IsAccelerationEligible(r))
}

func TestAcceleratedSetNaturalOrder(t *testing.T) {
	p := sku.Hardened()
	p.Grandfathered = []string{"Standard_D40_v3"}
	c := NewAccelerationClassifier(p)

	got := c.AcceleratedSet([]sku.Record{
		sku.NewRecord("Standard_D16_v3", 16, 0),
		sku.NewRecord("Standard_D4_v3", 4, 0),
		sku.NewRecord("Standard_D8_v3", 8, 0),
		sku.NewRecord("Standard_D4_v3", 4, 0),
		sku.NewRecord("Standard_D2_v3", 2, 0),
		withCapability(sku.NewRecord("Standard_A10", 8, 0), sku.CapabilityAcceleratedNetworking, "True"),
		withCapability(sku.NewRecord("Standard_A2", 2, 0), sku.CapabilityAcceleratedNetworking, "True"),
	})

	assert.Equal(t, []string{
		"Standard_A2",
		"Standard_A10",
		"Standard_D4_v3",
		"Standard_D8_v3",
		"Standard_D16_v3",
		"Standard_D40_v3",
	}, got)
}

func TestAcceleratedSetIncludesGrandfatheredWithoutRecords(t *testing.T) {
	p := sku.Hardened()
	got := NewAccelerationClassifier(p).AcceleratedSet(nil)

	require.Len(t, got, len(p.Grandfathered))
	assert.ElementsMatch(t, p.Grandfathered, got)
	assert.Equal(t, "AZAP_Performance_ComputeV17C", got[0])
}
