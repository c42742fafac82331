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
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/skugen/pkg/errors"
	"github.com/NVIDIA/skugen/pkg/sku"
)

// AzureClient lists inventory through the Azure Resource Manager API.
type AzureClient struct {
	subscriptionID string
	subscriptions  *armsubscriptions.Client
	sizes          *armcompute.VirtualMachineSizesClient
	resourceSKUs   *armcompute.ResourceSKUsClient
}

// NewAzureClient creates an AzureClient for subscriptionID using cred.
// A nil opts uses the public cloud defaults.
func NewAzureClient(subscriptionID string, cred azcore.TokenCredential, opts *arm.ClientOptions) (*AzureClient, error) {
	if strings.TrimSpace(subscriptionID) == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "azure subscription ID is required")
	}

	subs, err := armsubscriptions.NewClient(cred, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to create subscriptions client", err)
	}
	sizes, err := armcompute.NewVirtualMachineSizesClient(subscriptionID, cred, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to create VM sizes client", err)
	}
	skus, err := armcompute.NewResourceSKUsClient(subscriptionID, cred, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to create resource SKUs client", err)
	}

	return &AzureClient{
		subscriptionID: subscriptionID,
		subscriptions:  subs,
		sizes:          sizes,
		resourceSKUs:   skus,
	}, nil
}

// NewDefaultAzureClient creates an AzureClient authenticated with the
// default credential chain (environment, workload identity, managed
// identity, az CLI login).
func NewDefaultAzureClient(subscriptionID string) (*AzureClient, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnauthorized, "failed to obtain azure credential", err)
	}
	return NewAzureClient(subscriptionID, cred, nil)
}

// ListLocations implements Client.
func (c *AzureClient) ListLocations(ctx context.Context) ([]string, error) {
	var out []string
	pager := c.subscriptions.NewListLocationsPager(c.subscriptionID, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, azureError("failed to list locations", err, nil)
		}
		for _, loc := range page.Value {
			if loc == nil {
				continue
			}
			if name := ptr.Deref(loc.Name, ""); name != "" {
				out = append(out, name)
			}
		}
	}
	slog.Debug("listed azure locations", "count", len(out))
	return out, nil
}

// ListSizes implements Client.
func (c *AzureClient) ListSizes(ctx context.Context, location string) ([]sku.Record, error) {
	var out []sku.Record
	pager := c.sizes.NewListPager(location, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, azureError("failed to list VM sizes", err, map[string]any{"location": location})
		}
		for _, size := range page.Value {
			if r, ok := recordFromSize(size); ok {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

// ListResourceSKUs implements Client.
func (c *AzureClient) ListResourceSKUs(ctx context.Context) ([]sku.Record, error) {
	var out []sku.Record
	pager := c.resourceSKUs.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, azureError("failed to list resource SKUs", err, nil)
		}
		for _, rs := range page.Value {
			if r, ok := recordFromResourceSKU(rs); ok {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func recordFromSize(size *armcompute.VirtualMachineSize) (sku.Record, bool) {
	if size == nil || size.Name == nil {
		return sku.Record{}, false
	}
	return sku.NewRecord(
		*size.Name,
		int(ptr.Deref(size.NumberOfCores, 0)),
		int(ptr.Deref(size.ResourceDiskSizeInMB, 0)),
	), true
}

func recordFromResourceSKU(rs *armcompute.ResourceSKU) (sku.Record, bool) {
	if rs == nil || rs.Name == nil {
		return sku.Record{}, false
	}
	if !strings.EqualFold(ptr.Deref(rs.ResourceType, ""), resourceTypeVirtualMachines) {
		return sku.Record{}, false
	}
	caps := make(map[string]string, len(rs.Capabilities))
	for _, c := range rs.Capabilities {
		if c == nil || c.Name == nil {
			continue
		}
		caps[*c.Name] = ptr.Deref(c.Value, "")
	}
	return recordFromCapabilities(*rs.Name, caps), true
}

// azureError classifies an ARM failure. Authentication failures map to
// ErrCodeUnauthorized, everything else to ErrCodeUnavailable.
func azureError(msg string, err error, fields map[string]any) error {
	code := errors.ErrCodeUnavailable
	var respErr *azcore.ResponseError
	if stderrors.As(err, &respErr) {
		if fields == nil {
			fields = map[string]any{}
		}
		fields["status"] = respErr.StatusCode
		fields["errorCode"] = respErr.ErrorCode
		if respErr.StatusCode == http.StatusUnauthorized || respErr.StatusCode == http.StatusForbidden {
			code = errors.ErrCodeUnauthorized
		}
	}
	return errors.WrapWithContext(code, fmt.Sprintf("azure: %s", msg), err, fields)
}
