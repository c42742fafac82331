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

package serializer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/skugen/pkg/errors"
)

func TestHttpReader_ReadWithContext(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("| Region | Managed Availability Set fault domain count |\n"))
	}))
	defer srv.Close()

	r := NewHttpReader(WithClient(srv.Client()))
	data, err := r.ReadWithContext(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fault domain count")
	assert.Equal(t, HttpReaderUserAgent, gotUA)
}

func TestHttpReader_CustomUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	r := NewHttpReader(WithClient(srv.Client()), WithUserAgent("skugen-test"))
	_, err := r.ReadWithContext(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "skugen-test", gotUA)
}

func TestHttpReader_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHttpReader(WithClient(srv.Client())).ReadWithContext(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnavailable))
}

func TestHttpReader_EmptyURL(t *testing.T) {
	_, err := NewHttpReader().ReadWithContext(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
}

func TestHttpReader_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHttpReader(WithClient(srv.Client())).ReadWithContext(ctx, srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHttpReader_Timeout(t *testing.T) {
	r := NewHttpReader(WithTotalTimeout(3 * time.Second))
	assert.Equal(t, 3*time.Second, r.Client.Timeout)

	r = NewHttpReader(WithTotalTimeout(0))
	assert.Positive(t, r.Client.Timeout)
}
