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

package defaults

import (
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Inventory timeouts
		{"InventoryRegionTimeout", InventoryRegionTimeout, 30 * time.Second, 10 * time.Minute},
		{"InventoryLocationsTimeout", InventoryLocationsTimeout, 10 * time.Second, 5 * time.Minute},
		{"InventoryResourceSkusTimeout", InventoryResourceSkusTimeout, 1 * time.Minute, 15 * time.Minute},

		// Generate timeouts
		{"GenerateTimeout", GenerateTimeout, 5 * time.Minute, 2 * time.Hour},
		{"FaultDomainTimeout", FaultDomainTimeout, 30 * time.Second, 10 * time.Minute},

		// HTTP client timeouts
		{"HTTPClientTimeout", HTTPClientTimeout, 10 * time.Second, 60 * time.Second},
		{"HTTPConnectTimeout", HTTPConnectTimeout, 1 * time.Second, 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestInventoryTimeoutsFitGenerate(t *testing.T) {
	// A single region query must not consume the whole run.
	if InventoryRegionTimeout >= GenerateTimeout {
		t.Errorf("InventoryRegionTimeout (%v) should be less than GenerateTimeout (%v)",
			InventoryRegionTimeout, GenerateTimeout)
	}
	if InventoryResourceSkusTimeout >= GenerateTimeout {
		t.Errorf("InventoryResourceSkusTimeout (%v) should be less than GenerateTimeout (%v)",
			InventoryResourceSkusTimeout, GenerateTimeout)
	}
}

func TestHTTPClientTimeoutRelationships(t *testing.T) {
	if HTTPConnectTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPConnectTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPConnectTimeout, HTTPClientTimeout)
	}
	if HTTPTLSHandshakeTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPTLSHandshakeTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPTLSHandshakeTimeout, HTTPClientTimeout)
	}
	if HTTPClientTimeout >= FaultDomainTimeout {
		t.Errorf("HTTPClientTimeout (%v) should be less than FaultDomainTimeout (%v)",
			HTTPClientTimeout, FaultDomainTimeout)
	}
}

func TestFaultDomainSourceURL(t *testing.T) {
	u, err := url.Parse(FaultDomainSourceURL)
	if err != nil {
		t.Fatalf("invalid FaultDomainSourceURL: %v", err)
	}
	if u.Scheme != "https" {
		t.Errorf("expected https scheme, got %q", u.Scheme)
	}
	if !strings.HasSuffix(u.Path, ".md") {
		t.Errorf("expected markdown source, got %q", u.Path)
	}
}

func TestOutputDefaults(t *testing.T) {
	if filepath.Ext(OutputPath) != ".go" {
		t.Errorf("OutputPath %q should be a Go file", OutputPath)
	}
	if filepath.Base(filepath.Dir(OutputPath)) != OutputPackage {
		t.Errorf("OutputPath %q should live in package directory %q", OutputPath, OutputPackage)
	}
}
