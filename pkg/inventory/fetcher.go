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
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/juju/collections/set"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/skugen/pkg/defaults"
	"github.com/NVIDIA/skugen/pkg/errors"
	"github.com/NVIDIA/skugen/pkg/sku"
)

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithRateLimit caps the rate of inventory calls. A limit of rate.Inf
// disables limiting.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(f *Fetcher) {
		if burst < 1 {
			burst = 1
		}
		f.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithRegionTimeout bounds each per-region size listing.
func WithRegionTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.regionTimeout = d
		}
	}
}

// Fetcher drives a Client under a Profile.
type Fetcher struct {
	client        Client
	profile       *sku.Profile
	limiter       *rate.Limiter
	regionTimeout time.Duration
	lower         cases.Caser
}

// NewFetcher returns a Fetcher for client and profile.
func NewFetcher(client Client, profile *sku.Profile, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:        client,
		profile:       profile,
		limiter:       rate.NewLimiter(rate.Inf, 1),
		regionTimeout: defaults.InventoryRegionTimeout,
		lower:         cases.Lower(language.Und),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchRegions returns the API regions unioned with the profile's
// supplemental regions, lower-cased, deduplicated and sorted.
func (f *Fetcher) FetchRegions(ctx context.Context) ([]string, error) {
	locs, err := f.listLocations(ctx)
	if err != nil {
		return nil, err
	}
	return f.regions(locs), nil
}

// Fetch lists locations once and derives both the region list and the
// catalog from that single listing.
func (f *Fetcher) Fetch(ctx context.Context) ([]string, sku.Catalog, error) {
	locs, err := f.listLocations(ctx)
	if err != nil {
		return nil, sku.Catalog{}, err
	}
	catalog, err := f.catalog(ctx, locs)
	if err != nil {
		return nil, sku.Catalog{}, err
	}
	return f.regions(locs), catalog, nil
}

func (f *Fetcher) regions(locs []string) []string {
	regions := set.NewStrings()
	for _, l := range slices.Concat(locs, f.profile.SupplementalRegions) {
		if r := f.normalizeRegion(l); r != "" {
			regions.Add(r)
		}
	}
	out := regions.SortedValues()
	slog.Debug("regions resolved", "api", len(locs), "total", len(out))
	return out
}

func (f *Fetcher) normalizeRegion(name string) string {
	return f.lower.String(strings.Join(strings.Fields(name), ""))
}

// FetchAllSkus lists the sizes of every region and folds them into one
// catalog. Regions in the profile's skip list are never queried. A region
// whose listing fails is logged and skipped; cancellation of ctx is not.
// Pinned records are added after the fold.
func (f *Fetcher) FetchAllSkus(ctx context.Context) (sku.Catalog, error) {
	locs, err := f.listLocations(ctx)
	if err != nil {
		return sku.Catalog{}, err
	}
	return f.catalog(ctx, locs)
}

func (f *Fetcher) catalog(ctx context.Context, locs []string) (sku.Catalog, error) {
	start := time.Now()
	defer func() {
		fetchDuration.WithLabelValues("skus").Observe(time.Since(start).Seconds())
	}()

	catalog := sku.NewCatalog()
	for _, loc := range locs {
		if f.profile.Skipped(loc) {
			slog.Debug("skipping region", "location", loc, "reason", "profile skip list")
			regionQueries.WithLabelValues(statusSkipped).Inc()
			continue
		}

		// A limiter refusal means the deadline cannot be met, never a region fault.
		if err := f.limiter.Wait(ctx); err != nil {
			return sku.Catalog{}, errors.Wrap(errors.ErrCodeTimeout, "rate limiter wait interrupted", err)
		}

		records, err := f.listSizes(ctx, loc)
		if err != nil {
			if ctx.Err() != nil {
				return sku.Catalog{}, errors.Wrap(errors.ErrCodeTimeout, "inventory fetch interrupted", ctx.Err())
			}
			slog.Warn("region size listing failed, skipping region",
				"location", loc,
				"error", err)
			regionQueries.WithLabelValues(statusFailed).Inc()
			continue
		}

		regionQueries.WithLabelValues(statusSuccess).Inc()
		catalog = catalog.Merge(records, f.profile.Excluded)
		slog.Debug("region merged", "location", loc, "reported", len(records), "catalog", catalog.Len())
	}

	catalog = catalog.WithPinned(f.profile.Pinned)
	catalogSkus.Set(float64(catalog.Len()))

	slog.Info("catalog merged",
		"profile", f.profile.Name,
		"regions", len(locs),
		"skus", catalog.Len())
	return catalog, nil
}

// FetchResourceSkus returns every resource SKU whose name carries the
// profile's accelerated prefix and is not excluded. Duplicate names across
// locations collapse to the first occurrence.
func (f *Fetcher) FetchResourceSkus(ctx context.Context) ([]sku.Record, error) {
	start := time.Now()
	defer func() {
		fetchDuration.WithLabelValues("resource_skus").Observe(time.Since(start).Seconds())
	}()

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, "rate limiter wait interrupted", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, defaults.InventoryResourceSkusTimeout)
	defer cancel()

	records, err := f.client.ListResourceSKUs(callCtx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to list resource SKUs", err)
	}

	prefix := f.profile.AcceleratedPrefix
	exclude := func(name string) bool {
		return f.profile.Excluded(name) || !strings.HasPrefix(name, prefix)
	}
	out := sku.NewCatalog().Merge(records, exclude).Records()
	slog.Debug("resource SKUs listed", "reported", len(records), "kept", len(out))
	return out, nil
}

func (f *Fetcher) listLocations(ctx context.Context) ([]string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, "rate limiter wait interrupted", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, defaults.InventoryLocationsTimeout)
	defer cancel()

	locs, err := f.client.ListLocations(callCtx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to list locations", err)
	}
	return locs, nil
}

func (f *Fetcher) listSizes(ctx context.Context, location string) ([]sku.Record, error) {
	callCtx, cancel := context.WithTimeout(ctx, f.regionTimeout)
	defer cancel()

	return f.client.ListSizes(callCtx, location)
}
