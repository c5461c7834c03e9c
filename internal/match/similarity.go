// ABOUTME: Pluggable string similarity metrics for fuzzy matching
// ABOUTME: Wraps strutil metrics behind a plain func(a, b) float64
package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Similarity scores two strings in [0,1]; 1 means identical.
type Similarity func(a, b string) float64

// DefaultMetric is used when no metric is configured.
const DefaultMetric = "jaro-winkler"

// ErrUnknownMetric is returned for metric names Metric does not know.
var ErrUnknownMetric = errors.New("unknown similarity metric")

var metricNames = []string{"jaro-winkler", "jaro", "levenshtein", "sorensen-dice", "jaccard"}

// MetricNames lists the names accepted by Metric.
func MetricNames() []string {
	return append([]string(nil), metricNames...)
}

// Metric returns the named similarity function. An empty name selects DefaultMetric.
func Metric(name string) (Similarity, error) {
	var m strutil.StringMetric
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "jaro-winkler":
		m = metrics.NewJaroWinkler()
	case "jaro":
		m = metrics.NewJaro()
	case "levenshtein":
		m = metrics.NewLevenshtein()
	case "sorensen-dice":
		m = metrics.NewSorensenDice()
	case "jaccard":
		m = metrics.NewJaccard()
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownMetric, name, strings.Join(metricNames, ", "))
	}

	return func(a, b string) float64 {
		if a == b {
			return 1
		}
		return clamp(strutil.Similarity(a, b, m))
	}, nil
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
