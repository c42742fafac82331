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

package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/NVIDIA/skugen/pkg/errors"
	"github.com/NVIDIA/skugen/pkg/sku"
)

// Runner executes a command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// CLIOption configures a CLIClient.
type CLIOption func(*CLIClient)

// WithRunner replaces the process runner, e.g. with a canned-output fake.
func WithRunner(r Runner) CLIOption {
	return func(c *CLIClient) {
		c.run = r
	}
}

// WithBinary overrides the az executable name or path. Empty keeps the default.
func WithBinary(path string) CLIOption {
	return func(c *CLIClient) {
		if path != "" {
			c.binary = path
		}
	}
}

// CLIClient lists inventory by invoking the az CLI.
type CLIClient struct {
	binary string
	run    Runner
}

// NewCLIClient returns a CLIClient that runs "az" from PATH.
func NewCLIClient(opts ...CLIOption) *CLIClient {
	c := &CLIClient{
		binary: "az",
		run:    execRunner,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, fmt.Sprintf("%s not found in PATH", name), err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return out, nil
}

type cliLocation struct {
	Name string `json:"name"`
}

type cliSize struct {
	Name                 string `json:"name"`
	NumberOfCores        int    `json:"numberOfCores"`
	ResourceDiskSizeInMb int    `json:"resourceDiskSizeInMb"`
}

type cliCapability struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

type cliResourceSKU struct {
	Name         string          `json:"name"`
	ResourceType string          `json:"resourceType"`
	Capabilities []cliCapability `json:"capabilities"`
}

// ListLocations implements Client.
func (c *CLIClient) ListLocations(ctx context.Context) ([]string, error) {
	var locs []cliLocation
	if err := c.query(ctx, &locs, "account", "list-locations", "-o", "json"); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(locs))
	for _, l := range locs {
		if l.Name != "" {
			out = append(out, l.Name)
		}
	}
	return out, nil
}

// ListSizes implements Client.
func (c *CLIClient) ListSizes(ctx context.Context, location string) ([]sku.Record, error) {
	var sizes []cliSize
	if err := c.query(ctx, &sizes, "vm", "list-sizes", "-l", location, "-o", "json"); err != nil {
		return nil, err
	}
	out := make([]sku.Record, 0, len(sizes))
	for _, s := range sizes {
		if s.Name == "" {
			continue
		}
		out = append(out, sku.NewRecord(s.Name, s.NumberOfCores, s.ResourceDiskSizeInMb))
	}
	return out, nil
}

// ListResourceSKUs implements Client.
func (c *CLIClient) ListResourceSKUs(ctx context.Context) ([]sku.Record, error) {
	var skus []cliResourceSKU
	if err := c.query(ctx, &skus, "vm", "list-skus", "--all", "--resource-type", resourceTypeVirtualMachines, "-o", "json"); err != nil {
		return nil, err
	}
	out := make([]sku.Record, 0, len(skus))
	for _, s := range skus {
		if s.Name == "" {
			continue
		}
		if s.ResourceType != "" && !strings.EqualFold(s.ResourceType, resourceTypeVirtualMachines) {
			continue
		}
		caps := make(map[string]string, len(s.Capabilities))
		for _, cp := range s.Capabilities {
			caps[cp.Name] = capabilityValue(cp.Value)
		}
		out = append(out, recordFromCapabilities(s.Name, caps))
	}
	return out, nil
}

// capabilityValue renders a capability value as a string; the CLI reports
// most values as strings but booleans and numbers also occur.
func capabilityValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(t)
	}
}

func (c *CLIClient) query(ctx context.Context, v any, args ...string) error {
	slog.Debug("running az", "args", strings.Join(args, " "))
	out, err := c.run(ctx, c.binary, args...)
	if err != nil {
		code := errors.ErrCodeUnavailable
		var se *errors.StructuredError
		if stderrors.As(err, &se) {
			code = se.Code
		}
		return errors.WrapWithContext(code, fmt.Sprintf("az %s failed", strings.Join(args[:2], " ")), err,
			map[string]any{"args": args})
	}
	if err := json.Unmarshal(out, v); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to parse az output", err,
			map[string]any{"args": args})
	}
	return nil
}
