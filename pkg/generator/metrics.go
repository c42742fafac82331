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

package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var (
	generateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skugen_generate_duration_seconds",
			Help:    "Time taken to generate the constants file",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200},
		},
	)

	generateTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skugen_generate_total",
			Help: "Total number of generation attempts",
		},
		[]string{"status"},
	)

	allowedSkus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "skugen_allowed_skus",
			Help: "Number of allowed sizes per role in the last generated file",
		},
		[]string{"role"},
	)

	acceleratedSkus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skugen_accelerated_skus",
			Help: "Number of accelerated networking sizes in the last generated file",
		},
	)
)
