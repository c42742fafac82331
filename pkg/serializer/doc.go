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

// Package serializer encodes reports as JSON, YAML or a flattened table and
// decodes JSON or YAML documents from files or URLs.
//
// Writing a report:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//		return err
//	}
//
// Loading a captured inventory snapshot:
//
//	snap, err := serializer.FromFile[inventory.Snapshot](ctx, "inventory.yaml")
//
// Fetching a remote document:
//
//	body, err := serializer.NewHttpReader().ReadWithContext(ctx, url)
package serializer
