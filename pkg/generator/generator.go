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

package generator

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/NVIDIA/skugen/pkg/artifact"
	"github.com/NVIDIA/skugen/pkg/classifier"
	"github.com/NVIDIA/skugen/pkg/errors"
	"github.com/NVIDIA/skugen/pkg/faultdomain"
	"github.com/NVIDIA/skugen/pkg/header"
	"github.com/NVIDIA/skugen/pkg/inventory"
	"github.com/NVIDIA/skugen/pkg/render"
	"github.com/NVIDIA/skugen/pkg/serializer"
	"github.com/NVIDIA/skugen/pkg/sku"
)

// Generator produces the constants file for one profile.
type Generator struct {
	// Version and RunID are stamped into the report header.
	Version string
	RunID   string

	Profile *sku.Profile
	Client  inventory.Client

	// FetcherOptions tune rate limiting and per-region timeouts.
	FetcherOptions []inventory.Option

	// Package is the package clause of the generated file.
	Package string
	// OutputPath is the generated file's location.
	OutputPath string

	// FaultDomains, when set, is embedded as GetFaultDomainCountExpr.
	FaultDomains *faultdomain.Result

	// Checksums writes a checksum manifest next to the output.
	Checksums bool

	// Serializer receives the Report. If nil, the report is not emitted.
	Serializer serializer.Serializer
}

// Report summarizes a generation run.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Profile            string           `json:"profile" yaml:"profile"`
	Regions            int              `json:"regions" yaml:"regions"`
	Skus               int              `json:"skus" yaml:"skus"`
	Allowed            map[string]int   `json:"allowed" yaml:"allowed"`
	Accelerated        int              `json:"accelerated,omitempty" yaml:"accelerated,omitempty"`
	FaultDomainRegions int              `json:"faultDomainRegions,omitempty" yaml:"faultDomainRegions,omitempty"`
	Artifact           *artifact.Result `json:"artifact,omitempty" yaml:"artifact,omitempty"`
}

// Generate builds the file, writes it and emits the report.
func (g *Generator) Generate(ctx context.Context) error {
	start := time.Now()
	defer func() {
		generateDuration.Observe(time.Since(start).Seconds())
	}()

	src, report, err := g.Build(ctx)
	if err != nil {
		generateTotal.WithLabelValues(statusError).Inc()
		return err
	}

	res, err := artifact.Write(ctx, g.OutputPath, src)
	if err != nil {
		generateTotal.WithLabelValues(statusError).Inc()
		return err
	}
	report.Artifact = res

	if g.Checksums {
		if err := artifact.GenerateChecksums(ctx, filepath.Dir(res.Path), []string{res.Path}); err != nil {
			generateTotal.WithLabelValues(statusError).Inc()
			return err
		}
	}

	generateTotal.WithLabelValues(statusSuccess).Inc()

	if g.Serializer == nil {
		return nil
	}
	return g.Serializer.Serialize(ctx, report)
}

// Build runs every stage up to and including rendering and returns the
// formatted source with its report.
func (g *Generator) Build(ctx context.Context) ([]byte, *Report, error) {
	if g.Profile == nil || g.Client == nil {
		return nil, nil, errors.New(errors.ErrCodeInvalidRequest, "generator requires a profile and an inventory client")
	}

	f := inventory.NewFetcher(g.Client, g.Profile, g.FetcherOptions...)

	regions, catalog, err := f.Fetch(ctx)
	if err != nil {
		return nil, nil, err
	}

	report := &Report{
		Profile: g.Profile.Name,
		Regions: len(regions),
		Skus:    catalog.Len(),
		Allowed: make(map[string]int, len(g.Profile.Roles)),
	}
	report.Init(header.KindGenerateResult, g.Version, g.RunID)

	allowed := make(map[string][]string, len(g.Profile.Roles))
	for _, es := range classifier.ClassifyRoles(catalog, g.Profile.Roles) {
		allowed[es.Role.Name] = es.Sorted()
		report.Allowed[es.Role.Name] = es.Names.Size()
		allowedSkus.WithLabelValues(es.Role.Name).Set(float64(es.Names.Size()))
		slog.Debug("role classified", "role", es.Role.Name, "allowed", es.Names.Size())
	}

	tiers, err := classifier.StorageTiers(allowed[g.Profile.StorageRole])
	if err != nil {
		return nil, nil, err
	}

	var accelerated []string
	if g.Profile.Accelerated {
		records, err := f.FetchResourceSkus(ctx)
		if err != nil {
			return nil, nil, err
		}
		accelerated = classifier.NewAccelerationClassifier(g.Profile).AcceleratedSet(records)
		report.Accelerated = len(accelerated)
		acceleratedSkus.Set(float64(len(accelerated)))
	}

	in := render.InputFor(g.Profile, g.Package, regions, allowed, tiers, accelerated)
	for i, a := range in.Allowed {
		if a.SizeMapFunc == "" {
			continue
		}
		if in.Allowed[i].StorageTiers, err = classifier.StorageTiers(a.Names); err != nil {
			return nil, nil, err
		}
	}
	if g.FaultDomains != nil {
		in.FaultDomains = g.FaultDomains
		report.FaultDomainRegions = len(g.FaultDomains.Regions)
	}

	src, err := render.Render(in)
	if err != nil {
		return nil, nil, err
	}

	slog.Info("constants rendered",
		"profile", g.Profile.Name,
		"regions", report.Regions,
		"skus", report.Skus,
		"accelerated", report.Accelerated,
		"bytes", len(src))
	return src, report, nil
}
