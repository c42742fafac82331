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

import "strings"

// CommaPolicy controls where a Block places separators.
type CommaPolicy int

const (
	// CommaBetween separates elements but leaves the last one bare, as JSON requires.
	CommaBetween CommaPolicy = iota
	// CommaAfterEach terminates every element, as gofmt expects of multi-line composite literals.
	CommaAfterEach
)

// Block serializes one element per line.
type Block struct {
	Indent string
	Comma  CommaPolicy
}

// List renders each item on its own indented line.
func (b Block) List(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		b.line(&sb, item, i == len(items)-1)
	}
	return sb.String()
}

// Map renders one `"key": body` entry per key in the given order.
func (b Block) Map(keys []string, body func(key string) string) string {
	var sb strings.Builder
	for i, k := range keys {
		b.line(&sb, quote(k)+": "+body(k), i == len(keys)-1)
	}
	return sb.String()
}

func (b Block) line(sb *strings.Builder, s string, last bool) {
	sb.WriteString(b.Indent)
	sb.WriteString(s)
	if b.Comma == CommaAfterEach || !last {
		sb.WriteByte(',')
	}
	sb.WriteByte('\n')
}

// quoteAll double-quotes every item.
func quoteAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = quote(s)
	}
	return out
}

func quote(s string) string {
	return `"` + s + `"`
}
