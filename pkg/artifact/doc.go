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

// Package artifact writes generated files and their checksum manifest.
//
// Each artifact is written with a single create-write-close; there is no
// partial-write recovery. A truncated file is caught by the formatter gate
// the next time the generator or the consuming build runs.
//
//	res, err := artifact.Write(ctx, "pkg/helpers/azureconst.go", src)
//	if err != nil {
//	    return err
//	}
//	err = artifact.GenerateChecksums(ctx, "pkg/helpers", []string{res.Path})
package artifact
