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

// Source locations.
const (
	// FaultDomainSourceURL is the raw markdown table of per-region managed
	// disk fault-domain counts.
	FaultDomainSourceURL = "https://raw.githubusercontent.com/MicrosoftDocs/azure-docs/master/includes/managed-disks-common-fault-domain-region-list.md"
)

// Output defaults.
const (
	// OutputPath is where generate writes the constants file when no
	// --output flag is given.
	OutputPath = "pkg/helpers/azureconst.go"

	// OutputPackage is the package clause of the generated constants file.
	OutputPackage = "helpers"

	// ChecksumFileName is the name of the checksum manifest written next to artifacts.
	ChecksumFileName = "checksums.txt"
)
