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

package render

import (
	"bytes"
	"embed"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/NVIDIA/skugen/pkg/errors"
	"github.com/NVIDIA/skugen/pkg/faultdomain"
	"github.com/NVIDIA/skugen/pkg/sku"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Template names.
const (
	templateConstants    = "azureconst.go.tmpl"
	templateFaultDomains = "faultdomain.go.tmpl"
	templateSkus         = "skus.go.tmpl"
	templateLocations    = "locations.go.tmpl"
)

// Indentation of each rendered block.
const (
	indentGoList      = "\t\t"
	indentGoVar       = "\t"
	indentAllowed     = "        "
	indentSizeMap     = "    "
	indentStorageType = "      "
)

// AllowedSet is the eligibility set of one role, rendered as one function.
type AllowedSet struct {
	FuncName     string
	Doc          string
	AfterSizeMap bool
	Names        []string

	// SizeMapFunc, when set, adds a storage map over StorageTiers after the function.
	SizeMapFunc  string
	StorageTiers map[string]sku.StorageTier
}

// Input is everything the constants file is rendered from.
type Input struct {
	Package string
	License bool

	// Regions are sorted and emitted before TrailingRegions, which keep their order.
	Regions         []string
	TrailingRegions []string

	Allowed      []AllowedSet
	StorageTiers map[string]sku.StorageTier

	IncludeAccelerated bool
	Accelerated        []string

	// FaultDomains, when set, adds GetFaultDomainCountExpr to the file.
	FaultDomains *faultdomain.Result
}

// InputFor assembles an Input from a profile and the classified results.
func InputFor(p *sku.Profile, pkg string, regions []string, allowed map[string][]string,
	tiers map[string]sku.StorageTier, accelerated []string) Input {
	in := Input{
		Package:            pkg,
		License:            p.License,
		Regions:            regions,
		TrailingRegions:    p.TrailingRegions,
		StorageTiers:       tiers,
		IncludeAccelerated: p.Accelerated,
		Accelerated:        accelerated,
	}
	for _, r := range p.Roles {
		in.Allowed = append(in.Allowed, AllowedSet{
			FuncName:     r.FuncName,
			Doc:          r.Doc,
			AfterSizeMap: r.AfterSizeMap,
			Names:        allowed[r.Name],
			SizeMapFunc:  r.SizeMapFunc,
		})
	}
	return in
}

type allowedView struct {
	FuncName     string
	Doc          string
	AfterSizeMap bool
	Values       string
	SizeMap      *sizeMapView
}

type sizeMapView struct {
	FuncName string
	Body     string
}

type constantsView struct {
	Package            string
	License            bool
	Locations          string
	Allowed            []allowedView
	SizeMap            sizeMapView
	IncludeAccelerated bool
	Accelerated        string
	FaultDomains       string
}

// Render produces the formatted constants file for in. Allowed sets and the
// size map are emitted in lexicographic order and the accelerated list in
// the order given. The same Input always renders to the same bytes.
func Render(in Input) ([]byte, error) {
	if err := checkPackage(in.Package); err != nil {
		return nil, err
	}

	regions := slices.Clone(in.Regions)
	sort.Strings(regions)
	locations := slices.Concat(regions, in.TrailingRegions)

	for _, names := range [][]string{locations, in.Accelerated} {
		if err := checkNames(names); err != nil {
			return nil, err
		}
	}

	sizeMap, err := sizeMapBody(in.StorageTiers)
	if err != nil {
		return nil, err
	}

	view := constantsView{
		Package:            in.Package,
		License:            in.License,
		Locations:          Block{Indent: indentGoList, Comma: CommaAfterEach}.List(quoteAll(locations)),
		IncludeAccelerated: in.IncludeAccelerated,
		Accelerated:        Block{Indent: indentGoVar, Comma: CommaAfterEach}.List(quoteAll(in.Accelerated)),
		SizeMap:            sizeMapView{FuncName: "GetSizeMap", Body: sizeMap},
	}

	if in.FaultDomains != nil {
		view.FaultDomains = indentLines(in.FaultDomains.GoCode, "\t")
	}

	for _, a := range in.Allowed {
		if err := checkNames(a.Names); err != nil {
			return nil, err
		}
		names := slices.Clone(a.Names)
		sort.Strings(names)
		av := allowedView{
			FuncName:     a.FuncName,
			Doc:          a.Doc,
			AfterSizeMap: a.AfterSizeMap,
			Values:       Block{Indent: indentAllowed, Comma: CommaBetween}.List(quoteAll(names)),
		}
		if a.SizeMapFunc != "" {
			body, err := sizeMapBody(a.StorageTiers)
			if err != nil {
				return nil, err
			}
			av.SizeMap = &sizeMapView{FuncName: a.SizeMapFunc, Body: body}
		}
		view.Allowed = append(view.Allowed, av)
	}

	return execute(templateConstants, view)
}

// sizeMapBody renders one object per size, in lexicographic order, holding
// its storageAccountType.
func sizeMapBody(tiers map[string]sku.StorageTier) (string, error) {
	names := make([]string, 0, len(tiers))
	for name := range tiers {
		names = append(names, name)
	}
	sort.Strings(names)
	if err := checkNames(names); err != nil {
		return "", err
	}
	return Block{Indent: indentSizeMap, Comma: CommaBetween}.Map(names, func(name string) string {
		return fmt.Sprintf("{\n%s\"storageAccountType\": %s\n%s}",
			indentStorageType, quote(string(tiers[name])), indentSizeMap)
	}), nil
}

// RenderFaultDomains produces a Go file exposing GetFaultDomainCountExpr.
func RenderFaultDomains(result *faultdomain.Result, pkg string, license bool) ([]byte, error) {
	if result == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "fault-domain result is nil")
	}
	if err := checkPackage(pkg); err != nil {
		return nil, err
	}
	return execute(templateFaultDomains, struct {
		Package string
		License bool
		Body    string
	}{
		Package: pkg,
		License: license,
		Body:    indentLines(result.GoCode, "\t"),
	})
}

// SkuEntry is one row of the rendered VMSkus table.
type SkuEntry struct {
	Name                  string `json:"name" yaml:"name"`
	AcceleratedNetworking bool   `json:"acceleratedNetworking" yaml:"acceleratedNetworking"`
}

// RenderSkus produces a Go file declaring the VMSkus table.
func RenderSkus(pkg string, license bool, skus []SkuEntry) ([]byte, error) {
	if err := checkPackage(pkg); err != nil {
		return nil, err
	}
	for _, s := range skus {
		if err := checkName(s.Name); err != nil {
			return nil, err
		}
	}
	return execute(templateSkus, struct {
		Package string
		License bool
		Skus    []SkuEntry
	}{pkg, license, skus})
}

// RenderLocations produces a Go file declaring GetAzureLocations over
// the given regions in order.
func RenderLocations(pkg string, license bool, regions []string) ([]byte, error) {
	if err := checkPackage(pkg); err != nil {
		return nil, err
	}
	if err := checkNames(regions); err != nil {
		return nil, err
	}
	return execute(templateLocations, struct {
		Package   string
		License   bool
		Locations string
	}{pkg, license, Block{Indent: indentGoList, Comma: CommaAfterEach}.List(quoteAll(regions))})
}

func execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, fmt.Sprintf("failed to execute template %s", name), err)
	}
	return Format(strings.TrimSuffix(name, ".tmpl"), buf.Bytes())
}

// Format runs src through the Go formatter. Any rejection is returned as
// ErrCodeMalformedOutput.
func Format(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		slog.Error("generated source rejected by formatter", "file", filename, "error", err)
		return nil, errors.WrapWithContext(errors.ErrCodeMalformedOutput, "generated source does not format", err,
			map[string]any{"file": filename})
	}
	return out, nil
}

func indentLines(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = indent + l
		}
	}
	return strings.Join(lines, "\n")
}

func checkPackage(pkg string) error {
	if pkg == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "package name is required")
	}
	return nil
}

func checkNames(names []string) error {
	for _, n := range names {
		if err := checkName(n); err != nil {
			return err
		}
	}
	return nil
}

// checkName rejects names that cannot sit unescaped inside both a Go
// interpreted string and a raw string holding JSON.
func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, "\"\\`\n\r\t") {
		return errors.NewWithContext(errors.ErrCodeMalformedOutput, "name cannot be rendered",
			map[string]any{"name": name})
	}
	return nil
}
