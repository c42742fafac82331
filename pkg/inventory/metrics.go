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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Region query outcomes.
const (
	statusSuccess = "success"
	statusSkipped = "skipped"
	statusFailed  = "failed"
)

var (
	regionQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skugen_inventory_region_queries_total",
			Help: "Total number of per-region size listings by outcome",
		},
		[]string{"status"},
	)

	catalogSkus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skugen_inventory_catalog_skus",
			Help: "Number of sizes in the most recently merged catalog",
		},
	)

	fetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skugen_inventory_fetch_duration_seconds",
			Help:    "Duration of inventory fetch operations in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200},
		},
		[]string{"operation"},
	)
)
