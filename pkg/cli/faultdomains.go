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
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/skugen/pkg/defaults"
	"github.com/NVIDIA/skugen/pkg/header"
	"github.com/NVIDIA/skugen/pkg/render"
)

func faultDomainsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "fault-domains",
		EnableShellCompletion: true,
		Usage:                 "Synthesize the fault-domain count ARM expression",
		Description: `Azure has no API for the number of fault domains in a location, so this
command parses the published managed disk fault-domain table and builds an ARM
expression that evaluates to 3 for the listed three-domain regions, 1 for the
centraluseuap canary region and 2 everywhere else.

The report carries the minified expression and a Go snippet declaring it. With
--code-output the snippet is also written as a formatted Go file exposing
GetFaultDomainCountExpr.

# Examples

  skugen fault-domains --format json
  skugen fault-domains --code-output pkg/helpers/faultdomains.go`,
		Flags: []cli.Flag{
			faultDomainURLFlag(),
			&cli.StringFlag{
				Name:  "code-output",
				Usage: "Also write a Go file exposing GetFaultDomainCountExpr to this path",
			},
			packageFlag(),
			&cli.BoolFlag{
				Name:  "license",
				Usage: "Prepend the Microsoft MIT license header to the Go file",
				Value: true,
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.FaultDomainTimeout)
			defer cancel()

			url := cmd.String("fault-domain-url")
			result, err := synthesizeFaultDomains(ctx, url)
			if err != nil {
				return err
			}

			if path := cmd.String("code-output"); path != "" {
				src, err := render.RenderFaultDomains(result, cmd.String("package"), cmd.Bool("license"))
				if err != nil {
					return err
				}
				if err := writeCode(ctx, path, src); err != nil {
					return err
				}
			}

			report := &FaultDomainReport{Source: url, Result: *result}
			report.Init(header.KindFaultDomainExpression, version, runID)
			return writeReport(ctx, cmd, report)
		},
	}
}
