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

package faultdomain

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/juju/collections/set"

	"github.com/NVIDIA/skugen/pkg/errors"
)

// CanaryRegion is the test region that always has a single fault domain.
const CanaryRegion = "centraluseuap"

// Fault-domain counts produced by the expression.
const (
	MaxFaultDomains     = 3
	DefaultFaultDomains = 2
	CanaryFaultDomains  = 1
)

// rowPattern matches one "| name | digit |" cell pair of a pipe table.
var rowPattern = regexp.MustCompile(`\|\s*([A-Za-z0-9 ]*?)\s+\|\s*(\d)\s*\|`)

// armTemplate is the readable form of the expression; %s receives the
// comma-joined three-domain regions.
const armTemplate = `"[
if( contains(
      split('%s', ','),
        variables('location') ),
  3,
if( equals('centraluseuap', variables('location') ),
  1,
  2
))]"`

const goCodeTemplate = `// armExpr is evaluated by Azure Resource Manager at deployment time:
//   if location is in the three-fault-domain list, return 3
//   else if location is "canary" (testing), return 1
//   else return 2
// NOTE: use "skugen fault-domains" to update this ARM expression.
armExpr := ` + "`%s`" + `
// strip all whitespace
armExpr = strings.Join(strings.Fields(armExpr), "")`

// Row is one parsed table row.
type Row struct {
	Region string `json:"region" yaml:"region"`
	Count  int    `json:"count" yaml:"count"`
}

// Table is the parsed fault-domain document in document order.
type Table []Row

// Parse extracts region rows from a markdown pipe table. Region names have
// their spaces removed and are lower-cased. Rows that do not match are
// skipped.
func Parse(text string) Table {
	var t Table
	for _, m := range rowPattern.FindAllStringSubmatch(text, -1) {
		region := strings.ToLower(strings.ReplaceAll(m[1], " ", ""))
		if region == "" {
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		t = append(t, Row{Region: region, Count: n})
	}
	slog.Debug("fault-domain table parsed", "rows", len(t))
	return t
}

// ThreeDomainRegions returns the sorted, deduplicated regions with three
// fault domains.
func (t Table) ThreeDomainRegions() []string {
	regions := set.NewStrings()
	for _, r := range t {
		if r.Count == MaxFaultDomains {
			regions.Add(r.Region)
		}
	}
	return regions.SortedValues()
}

// Count returns the fault-domain count the synthesized expression yields
// for region.
func (t Table) Count(region string) int {
	for _, r := range t {
		if r.Region == region && r.Count == MaxFaultDomains {
			return MaxFaultDomains
		}
	}
	if region == CanaryRegion {
		return CanaryFaultDomains
	}
	return DefaultFaultDomains
}

// Result is a synthesized fault-domain expression.
type Result struct {
	// Regions are the three-domain regions embedded in the expression.
	Regions []string `json:"regions" yaml:"regions"`
	// Expression is the whitespace-free ARM expression, double quotes included.
	Expression string `json:"expression" yaml:"expression"`
	// GoCode declares the readable expression and collapses it to Expression.
	GoCode string `json:"goCode" yaml:"goCode"`
}

// Synthesize parses text and builds the expression and its Go snippet.
// A document without any three-domain region is rejected.
func Synthesize(text string) (*Result, error) {
	regions := Parse(text).ThreeDomainRegions()
	if len(regions) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedOutput,
			"fault-domain document contains no three-fault-domain regions")
	}

	readable := fmt.Sprintf(armTemplate, strings.Join(regions, ","))
	return &Result{
		Regions:    regions,
		Expression: CollapseWhitespace(readable),
		GoCode:     fmt.Sprintf(goCodeTemplate, readable),
	}, nil
}

// CollapseWhitespace removes every whitespace run from s, matching
// strings.Join(strings.Fields(s), "") in the generated snippet.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
