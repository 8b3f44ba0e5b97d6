// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"sort"
	"strings"
)

// Series types understood by the registry.
const (
	Positions = "positions"
	Angles    = "angles"
)

// Metric names understood by the registry.
const (
	MetricEuclidean        = "euclidean"
	MetricSquaredEuclidean = "squared_euclidean"
	MetricOrientation      = "orientation"

	// DefaultMetric is used when the caller does not choose one.
	DefaultMetric = MetricEuclidean
)

// registry maps series type → metric name → implementation.
// It is never written after initialization. The Euclidean metrics are
// shared by both types; orientation is registered for angles only, so it
// appears in the option list of an angles ErrInvalidMetric and not in
// the positions one.
var registry = map[string]map[string]PointFunc{
	Angles: {
		MetricEuclidean:        Euclidean,
		MetricSquaredEuclidean: SquaredEuclidean,
		MetricOrientation:      Orientation,
	},
	Positions: {
		MetricEuclidean:        Euclidean,
		MetricSquaredEuclidean: SquaredEuclidean,
	},
}

// Resolve returns the PointFunc registered under metric for seriesType.
// Both names are matched case-insensitively after trimming spaces.
//
// Errors:
//   - ErrInvalidMetric — unknown series type or metric; the message lists
//     the valid options for the failing lookup.
func Resolve(seriesType, metric string) (PointFunc, error) {
	typ := normalize(seriesType)
	metrics, ok := registry[typ]
	if !ok {
		return nil, fmt.Errorf("%w: unknown series type %q (valid options: %s)",
			ErrInvalidMetric, seriesType, strings.Join(SeriesTypes(), ","))
	}
	fn, ok := metrics[normalize(metric)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (options for %s: %s)",
			ErrInvalidMetric, metric, typ, strings.Join(sortedKeys(metrics), ","))
	}

	return fn, nil
}

// ValidSeriesType reports whether seriesType names a registry scope.
func ValidSeriesType(seriesType string) bool {
	_, ok := registry[normalize(seriesType)]

	return ok
}

// SeriesTypes lists the registered series types in sorted order.
func SeriesTypes() []string {
	return sortedKeys(registry)
}

// Metrics lists the metric names registered for seriesType in sorted order.
// It returns nil for an unknown series type.
func Metrics(seriesType string) []string {
	metrics, ok := registry[normalize(seriesType)]
	if !ok {
		return nil
	}

	return sortedKeys(metrics)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
