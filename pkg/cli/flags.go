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
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/skugen/pkg/defaults"
	"github.com/NVIDIA/skugen/pkg/inventory"
	"github.com/NVIDIA/skugen/pkg/sku"
)

// formatCode renders Go source instead of a report.
const formatCode = "code"

// Flags are constructed per command so parsed values never leak between runs.

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   "Output format (yaml, json, table)",
		Value:   "yaml",
	}
}

// listFormatFlag is --format for commands that can also emit Go source.
func listFormatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   "Output format (yaml, json, table, code)",
		Value:   "yaml",
	}
}

func packageFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "package",
		Usage: "Package clause of generated Go files",
		Value: defaults.OutputPackage,
	}
}

func faultDomainURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "fault-domain-url",
		Usage:   "Location of the managed disk fault-domain markdown table",
		Value:   defaults.FaultDomainSourceURL,
		Sources: cli.EnvVars("SKUGEN_FAULT_DOMAIN_URL"),
	}
}

// sourceFlags select the live inventory client.
func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "source",
			Usage:   "Inventory source (azure, cli)",
			Value:   string(inventory.SourceCLI),
			Sources: cli.EnvVars("SKUGEN_SOURCE"),
		},
		&cli.StringFlag{
			Name:    "az-binary",
			Usage:   "Name or path of the az executable used by the cli source",
			Value:   "az",
			Sources: cli.EnvVars("SKUGEN_AZ_BINARY"),
		},
		&cli.StringFlag{
			Name:    "subscription",
			Usage:   "Azure subscription ID (required for the azure source)",
			Sources: cli.EnvVars("AZURE_SUBSCRIPTION_ID"),
		},
	}
}

// inventoryFlags are shared by every command that reads the inventory.
func inventoryFlags() []cli.Flag {
	return append(sourceFlags(),
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "Rule profile (hardened, legacy)",
			Value:   sku.ProfileHardened,
			Sources: cli.EnvVars("SKUGEN_PROFILE"),
		},
		&cli.StringFlag{
			Name:    "snapshot",
			Aliases: []string{"s"},
			Usage:   "Replay a captured inventory snapshot (file path or HTTP/HTTPS URL) instead of querying Azure",
		},
		&cli.FloatFlag{
			Name:    "qps",
			Usage:   "Maximum inventory calls per second (0 for unlimited)",
			Sources: cli.EnvVars("SKUGEN_QPS"),
		},
		&cli.DurationFlag{
			Name:  "region-timeout",
			Usage: "Timeout for each per-region size listing",
			Value: defaults.InventoryRegionTimeout,
		},
	)
}
