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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/skugen/pkg/faultdomain"
	"github.com/NVIDIA/skugen/pkg/inventory"
	"github.com/NVIDIA/skugen/pkg/serializer"
	"github.com/NVIDIA/skugen/pkg/sku"
)

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: %s",
			outFormat, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return outFormat, nil
}

// wantsCode reports whether --format asks for Go source.
func wantsCode(cmd *cli.Command) bool {
	return cmd.String("format") == formatCode
}

// parseProfile resolves --profile.
func parseProfile(cmd *cli.Command) (*sku.Profile, error) {
	return sku.LookupProfile(cmd.String("profile"))
}

// newInventoryClient builds the inventory client selected by --snapshot or --source.
func newInventoryClient(ctx context.Context, cmd *cli.Command) (inventory.Client, error) {
	if path := cmd.String("snapshot"); path != "" {
		snap, err := serializer.FromFile[inventory.Snapshot](ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load snapshot: %w", err)
		}
		slog.Info("replaying inventory snapshot", "path", path, "locations", len(snap.Locations))
		return inventory.NewSnapshotClient(snap)
	}

	source, err := inventory.ParseSource(cmd.String("source"))
	if err != nil {
		return nil, err
	}

	switch source {
	case inventory.SourceAzure:
		return inventory.NewDefaultAzureClient(cmd.String("subscription"))
	case inventory.SourceCLI:
		return inventory.NewCLIClient(inventory.WithBinary(cmd.String("az-binary"))), nil
	default:
		return nil, fmt.Errorf("unsupported inventory source: %s", source)
	}
}

// fetcherOptions maps --qps and --region-timeout onto inventory options.
func fetcherOptions(cmd *cli.Command) []inventory.Option {
	limit := rate.Inf
	if qps := cmd.Float("qps"); qps > 0 {
		limit = rate.Limit(qps)
	}
	return []inventory.Option{
		inventory.WithRateLimit(limit, 1),
		inventory.WithRegionTimeout(cmd.Duration("region-timeout")),
	}
}

// newFetcher resolves the profile and inventory client and returns a Fetcher.
func newFetcher(ctx context.Context, cmd *cli.Command) (*inventory.Fetcher, *sku.Profile, error) {
	profile, err := parseProfile(cmd)
	if err != nil {
		return nil, nil, err
	}
	client, err := newInventoryClient(ctx, cmd)
	if err != nil {
		return nil, nil, err
	}
	return inventory.NewFetcher(client, profile, fetcherOptions(cmd)...), profile, nil
}

// synthesizeFaultDomains downloads the fault-domain table from url and
// synthesizes its expression.
func synthesizeFaultDomains(ctx context.Context, url string) (*faultdomain.Result, error) {
	reader := serializer.NewHttpReader(serializer.WithUserAgent(name + "/" + version))
	text, err := faultdomain.Fetch(ctx, reader, url)
	if err != nil {
		return nil, err
	}
	return faultdomain.Synthesize(text)
}
