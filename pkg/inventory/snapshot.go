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
	"log/slog"
	"slices"

	"github.com/NVIDIA/skugen/pkg/errors"
	"github.com/NVIDIA/skugen/pkg/header"
	"github.com/NVIDIA/skugen/pkg/sku"
)

// Snapshot is a captured raw inventory: every location, the sizes each one
// reported, the locations whose listing failed, and all resource SKUs.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	Locations    []string                `json:"locations" yaml:"locations"`
	Sizes        map[string][]sku.Record `json:"sizes" yaml:"sizes"`
	Unavailable  map[string]string       `json:"unavailable,omitempty" yaml:"unavailable,omitempty"`
	ResourceSKUs []sku.Record            `json:"resourceSkus,omitempty" yaml:"resourceSkus,omitempty"`
}

// Capture records the raw inventory of client. Per-location failures are
// kept in Unavailable so a replay fails the same way; a location or resource
// SKU listing failure aborts the capture.
func Capture(ctx context.Context, client Client, opts ...header.Option) (*Snapshot, error) {
	locs, err := client.ListLocations(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to list locations", err)
	}

	snap := &Snapshot{
		Header:      *header.New(append([]header.Option{header.WithKind(header.KindInventorySnapshot)}, opts...)...),
		Locations:   slices.Clone(locs),
		Sizes:       make(map[string][]sku.Record, len(locs)),
		Unavailable: make(map[string]string),
	}

	for _, loc := range locs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records, err := client.ListSizes(ctx, loc)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			slog.Warn("location unavailable during capture", "location", loc, "error", err)
			snap.Unavailable[loc] = err.Error()
			continue
		}
		snap.Sizes[loc] = records
	}

	snap.ResourceSKUs, err = client.ListResourceSKUs(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to list resource SKUs", err)
	}

	slog.Info("inventory captured",
		"locations", len(snap.Locations),
		"unavailable", len(snap.Unavailable),
		"resourceSkus", len(snap.ResourceSKUs))
	return snap, nil
}

// SnapshotClient serves a Snapshot through the Client interface.
type SnapshotClient struct {
	snap *Snapshot
}

// NewSnapshotClient returns a Client replaying snap.
func NewSnapshotClient(snap *Snapshot) (*SnapshotClient, error) {
	if snap == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "snapshot is nil")
	}
	if snap.Kind != "" && snap.Kind != header.KindInventorySnapshot {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unexpected snapshot kind %q", snap.Kind),
			map[string]any{"want": header.KindInventorySnapshot})
	}
	return &SnapshotClient{snap: snap}, nil
}

// ListLocations implements Client.
func (c *SnapshotClient) ListLocations(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(c.snap.Locations), nil
}

// ListSizes implements Client.
func (c *SnapshotClient) ListSizes(ctx context.Context, location string) ([]sku.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if msg, ok := c.snap.Unavailable[location]; ok {
		return nil, errors.NewWithContext(errors.ErrCodeUnavailable, msg,
			map[string]any{"location": location, "replayed": true})
	}
	records, ok := c.snap.Sizes[location]
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("location %q not captured", location),
			map[string]any{"location": location})
	}
	return slices.Clone(records), nil
}

// ListResourceSKUs implements Client.
func (c *SnapshotClient) ListResourceSKUs(ctx context.Context) ([]sku.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(c.snap.ResourceSKUs), nil
}
