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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/skugen/pkg/header"
)

const testSnapshot = `kind: InventorySnapshot
locations:
  - EastUS
  - westus
  - francesouth
sizes:
  EastUS:
    - name: Standard_D2s_v3
      numberOfCores: 2
      resourceDiskSizeInMb: 16384
    - name: Basic_A1
      numberOfCores: 1
      resourceDiskSizeInMb: 40960
  westus:
    - name: Standard_DS2_v2
      numberOfCores: 2
      resourceDiskSizeInMb: 7168
    - name: Standard_D2s_v3
      numberOfCores: 8
      resourceDiskSizeInMb: 1
unavailable:
  francesouth: location not available for subscription
resourceSkus:
  - name: Standard_D2s_v3
    numberOfCores: 2
    resourceDiskSizeInMb: 16384
    capabilities:
      AcceleratedNetworkingEnabled: "True"
  - name: Standard_DS2_v2
    numberOfCores: 2
    resourceDiskSizeInMb: 7168
`

const testFaultDomainTable = `| Region | Maximum number of fault domains |
|---|---|
| East US | 3 |
| West US | 2 |
`

func writeTestSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	if err := os.WriteFile(path, []byte(testSnapshot), 0o600); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
	return path
}

func runRoot(t *testing.T, args ...string) error {
	t.Helper()
	return newRootCmd().Run(context.Background(), append([]string{name, "--log-level", "error"}, args...))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(b)
}

func hasFlag(flags []cli.Flag, name string) bool {
	for _, f := range flags {
		if slices.Contains(f.Names(), name) {
			return true
		}
	}
	return false
}

func TestRootCommands(t *testing.T) {
	root := newRootCmd()

	want := []string{"generate", "fault-domains", "skus", "locations", "snapshot", "version"}
	for _, n := range want {
		if root.Command(n) == nil {
			t.Errorf("root command is missing %q", n)
		}
	}
	for _, f := range []string{"log-level", "metrics-file"} {
		if !hasFlag(root.Flags, f) {
			t.Errorf("root command is missing flag %q", f)
		}
	}
}

func TestCommandFlags(t *testing.T) {
	tests := []struct {
		cmd   *cli.Command
		flags []string
	}{
		{generateCmd(), []string{"profile", "source", "az-binary", "subscription", "snapshot", "qps", "region-timeout",
			"output", "package", "fault-domains", "fault-domain-url", "checksums", "report", "format"}},
		{faultDomainsCmd(), []string{"fault-domain-url", "code-output", "package", "license", "output", "format"}},
		{skusCmd(), []string{"profile", "snapshot", "output", "format", "package"}},
		{locationsCmd(), []string{"profile", "snapshot", "output", "format", "package"}},
		{snapshotCmd(), []string{"source", "az-binary", "subscription", "output", "format"}},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.Name, func(t *testing.T) {
			for _, f := range tt.flags {
				if !hasFlag(tt.cmd.Flags, f) {
					t.Errorf("%s is missing flag %q", tt.cmd.Name, f)
				}
			}
		})
	}
}

func TestCommandLister(t *testing.T) {
	var buf bytes.Buffer
	root := &cli.Command{
		Name:   name,
		Writer: &buf,
		Commands: []*cli.Command{
			{Name: "generate"},
			{Name: "hidden", Hidden: true},
			{Name: "skus"},
		},
	}

	commandLister(context.Background(), root)

	if got, want := buf.String(), "generate\nskus\n"; got != want {
		t.Errorf("commandLister() = %q, want %q", got, want)
	}

	commandLister(context.Background(), nil)
}

func TestGenerateFromSnapshot(t *testing.T) {
	snap := writeTestSnapshot(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "helpers", "azureconst.go")
	report := filepath.Join(dir, "report.json")
	metrics := filepath.Join(dir, "skugen.prom")

	err := runRoot(t,
		"--metrics-file", metrics,
		"generate",
		"--snapshot", snap,
		"--output", out,
		"--checksums",
		"--report", report,
		"--format", "json",
	)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	src := readFile(t, out)
	for _, want := range []string{
		"package helpers",
		"func GetAzureLocations() []string {",
		"\"eastus\",",
		"func GetSizeMap() string {",
		"\"Standard_DS2_v2\": {\n",
		"var AcceleratedNetworkingSkus = []string{",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated file is missing %q", want)
		}
	}
	if strings.Contains(src, "Basic_A1") {
		t.Error("generated file contains an excluded Basic size")
	}

	var r map[string]any
	if err := json.Unmarshal([]byte(readFile(t, report)), &r); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if r["kind"] != string(header.KindGenerateResult) {
		t.Errorf("report kind = %v, want %s", r["kind"], header.KindGenerateResult)
	}
	if r["skus"] != float64(5) {
		t.Errorf("report skus = %v, want 5", r["skus"])
	}

	if !strings.Contains(readFile(t, filepath.Join(dir, "helpers", "checksums.txt")), "azureconst.go") {
		t.Error("checksums.txt does not list the generated file")
	}
	if !strings.Contains(readFile(t, metrics), "skugen_inventory_region_queries_total") {
		t.Error("metrics file does not contain the region query counter")
	}
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "azureconst.go")
	err := runRoot(t, "generate", "--snapshot", writeTestSnapshot(t), "--output", out, "--format", "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("output file written despite invalid arguments")
	}
}

func TestSkusCode(t *testing.T) {
	out := filepath.Join(t.TempDir(), "azure_skus.go")

	err := runRoot(t, "skus", "--snapshot", writeTestSnapshot(t), "--format", "code", "--output", out)
	if err != nil {
		t.Fatalf("skus failed: %v", err)
	}

	src := readFile(t, out)
	if !strings.Contains(src, "Name:                  \"Standard_D2s_v3\",\n\t\tAcceleratedNetworking: true,") {
		t.Errorf("generated skus missing accelerated Standard_D2s_v3:\n%s", src)
	}
	if !strings.Contains(src, "Name:                  \"Standard_DS2_v2\",\n\t\tAcceleratedNetworking: true,") {
		t.Errorf("generated skus missing Standard_DS2_v2 family match:\n%s", src)
	}
}

func TestLocationsReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "locations.json")

	err := runRoot(t, "locations", "--snapshot", writeTestSnapshot(t), "--format", "json", "--output", out)
	if err != nil {
		t.Fatalf("locations failed: %v", err)
	}

	var list LocationList
	if err := json.Unmarshal([]byte(readFile(t, out)), &list); err != nil {
		t.Fatalf("failed to decode locations: %v", err)
	}
	if list.Kind != header.KindLocationList {
		t.Errorf("kind = %s, want %s", list.Kind, header.KindLocationList)
	}
	for _, want := range []string{"eastus", "westus", "chinaeast", "usdodeast"} {
		if !slices.Contains(list.Locations, want) {
			t.Errorf("locations missing %q: %v", want, list.Locations)
		}
	}
	if !slices.IsSorted(list.Locations) {
		t.Errorf("locations not sorted: %v", list.Locations)
	}
}

func TestFaultDomains(t *testing.T) {
	var userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(testFaultDomainTable))
	}))
	defer srv.Close()

	dir := t.TempDir()
	code := filepath.Join(dir, "faultdomains.go")
	out := filepath.Join(dir, "faultdomains.json")

	err := runRoot(t, "fault-domains",
		"--fault-domain-url", srv.URL,
		"--code-output", code,
		"--output", out,
		"--format", "json",
	)
	if err != nil {
		t.Fatalf("fault-domains failed: %v", err)
	}

	var report FaultDomainReport
	if err := json.Unmarshal([]byte(readFile(t, out)), &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if !slices.Equal(report.Regions, []string{"eastus"}) {
		t.Errorf("regions = %v, want [eastus]", report.Regions)
	}
	if !strings.Contains(report.Expression, "split('eastus',',')") {
		t.Errorf("unexpected expression %s", report.Expression)
	}
	if want := name + "/" + version; userAgent != want {
		t.Errorf("User-Agent = %q, want %q", userAgent, want)
	}
	if !strings.Contains(readFile(t, code), "func GetFaultDomainCountExpr() string") {
		t.Error("generated Go file does not expose GetFaultDomainCountExpr")
	}
}

func TestSnapshotRejectsUnknownFormat(t *testing.T) {
	if err := runRoot(t, "snapshot", "--format", "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
