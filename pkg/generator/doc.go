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

/*
Package generator runs the end-to-end constants generation: fetch the
inventory, classify it under a profile, render the Go source and write it.

The stages run strictly in order and each one only consumes the output of
the previous one:

	regions, catalog, resource SKUs   inventory.Fetcher
	allowed sets, storage tiers       classifier.ClassifyRoles, classifier.StorageTiers
	accelerated networking list       classifier.AccelerationClassifier
	formatted source                  render.Render
	artifact and checksums            artifact.Write, artifact.GenerateChecksums

Usage:

	g := &generator.Generator{
	    Version:    version,
	    Profile:    sku.Hardened(),
	    Client:     inventory.NewCLIClient(),
	    Package:    "helpers",
	    OutputPath: "pkg/helpers/azureconst.go",
	    Serializer: serializer.NewStdoutWriter(serializer.FormatYAML),
	}
	if err := g.Generate(ctx); err != nil {
	    return err
	}

Build runs every stage except the write and is what tests exercise.
*/
package generator
