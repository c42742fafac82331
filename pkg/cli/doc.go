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

// Package cli implements the command-line interface of skugen, the generator of
// the Azure VM SKU constants consumed by the ARM template engine.
//
// # Commands
//
// generate - Write the constants file:
//
//	skugen generate [--profile hardened|legacy] [--output FILE] [--fault-domains]
//
// Fetches every region and the VM sizes each region reports, classifies them into
// per-role allowed lists, storage tiers and accelerated networking support and
// renders one gofmt-clean Go file. A failing region is logged and skipped; any
// other failure leaves the output file untouched.
//
// fault-domains - Synthesize the fault-domain count ARM expression:
//
//	skugen fault-domains [--code-output FILE] [--fault-domain-url URL]
//
// skus - List VM sizes with their accelerated networking flag:
//
//	skugen skus [--format yaml|json|table|code]
//
// locations - List regions:
//
//	skugen locations [--format yaml|json|table|code]
//
// snapshot - Capture the raw inventory for offline replay:
//
//	skugen snapshot --output inventory.yaml
//	skugen generate --snapshot inventory.yaml
//
// # Inventory Sources
//
//	--source cli     az CLI (default), uses the logged-in account
//	--source azure   Azure SDK with DefaultAzureCredential, requires --subscription
//	--snapshot FILE  replay a captured snapshot
//
// # Environment Variables
//
//	LOG_LEVEL                Logging verbosity (debug, info, warn, error)
//	SKUGEN_PROFILE           Rule profile
//	SKUGEN_SOURCE            Inventory source
//	SKUGEN_QPS               Inventory call rate limit
//	SKUGEN_METRICS_FILE      Prometheus text file written on exit
//	SKUGEN_FAULT_DOMAIN_URL  Fault-domain table location
//	AZURE_SUBSCRIPTION_ID    Subscription for the azure source
//
// # Exit Codes
//
//	0  Success
//	1  Inventory, formatting or write failure
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/skugen/pkg/cli.version=1.0.0'"
package cli
