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
	"slices"

	"github.com/NVIDIA/skugen/pkg/sku"
)

// fakeClient is an in-memory Client.
type fakeClient struct {
	locations    []string
	locationsErr error
	sizes        map[string][]sku.Record
	sizeErrs     map[string]error
	resourceSKUs []sku.Record
	resourceErr  error

	// onSizes runs before each ListSizes call.
	onSizes func(location string)

	sizeCalls []string
}

func (f *fakeClient) ListLocations(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.locationsErr != nil {
		return nil, f.locationsErr
	}
	return slices.Clone(f.locations), nil
}

// countingClient counts location listings.
type countingClient struct {
	*fakeClient
	locationCalls int
}

func (c *countingClient) ListLocations(ctx context.Context) ([]string, error) {
	c.locationCalls++
	return c.fakeClient.ListLocations(ctx)
}

func (f *fakeClient) ListSizes(ctx context.Context, location string) ([]sku.Record, error) {
	f.sizeCalls = append(f.sizeCalls, location)
	if f.onSizes != nil {
		f.onSizes(location)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := f.sizeErrs[location]; ok {
		return nil, err
	}
	records, ok := f.sizes[location]
	if !ok {
		return nil, fmt.Errorf("no registered resource provider found for location %q", location)
	}
	return slices.Clone(records), nil
}

func (f *fakeClient) ListResourceSKUs(ctx context.Context) ([]sku.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.resourceErr != nil {
		return nil, f.resourceErr
	}
	return slices.Clone(f.resourceSKUs), nil
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		locations: []string{"westus", "eastus", "francesouth", "EastUS2"},
		sizes: map[string][]sku.Record{
			"eastus": {
				sku.NewRecord("Standard_D2_v3", 2, 16384),
				sku.NewRecord("Standard_A1_Promo", 1, 71680),
				sku.NewRecord("Basic_A0", 1, 20480),
			},
			"westus": {
				sku.NewRecord("Standard_D2_v3", 8, 1),
				sku.NewRecord("Standard_A1", 1, 71680),
			},
			"EastUS2": {
				sku.NewRecord("Standard_PB12s", 12, 1),
			},
		},
		resourceSKUs: []sku.Record{
			{Name: "Standard_D2_v3", Cores: 2, Capabilities: map[string]string{"AcceleratedNetworkingEnabled": "False"}},
			{Name: "Standard_D2_v3", Cores: 2},
			{Name: "Standard_D4_v3", Cores: 4},
			{Name: "Standard_A1_Promo", Cores: 1},
			{Name: "Basic_A1", Cores: 1},
			{Name: "SQLGL", Cores: 0},
		},
	}
}
