// ABOUTME: Fuzzy ranking of stored commands against a free-text query
// ABOUTME: Token coverage/density blended with whole-intent similarity
package match

import (
	"errors"
	"sort"
	"strings"

	"github.com/harper/duckie/internal/db"
	"github.com/samber/lo"
)

const (
	// DefaultFloor is the minimum confidence reported as a match.
	DefaultFloor = 0.4

	// correctionThreshold is how close a misspelled word must be to a stored word
	// before it counts as that word.
	correctionThreshold = 0.8

	coverageWeight = 0.8
	densityWeight  = 0.2
)

// ErrNoMatch is returned by Lookup when nothing reaches the confidence floor.
var ErrNoMatch = errors.New("no matching command")

// Result pairs a record with its confidence in [0,1].
type Result struct {
	Record     db.Record `json:"record"`
	Confidence float64   `json:"confidence"`
}

// Matcher scores records against queries. It holds no state between calls.
type Matcher struct {
	floor      float64
	similarity Similarity
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithFloor sets the confidence floor.
func WithFloor(floor float64) Option {
	return func(m *Matcher) {
		m.floor = clamp(floor)
	}
}

// WithSimilarity replaces the similarity metric.
func WithSimilarity(s Similarity) Option {
	return func(m *Matcher) {
		if s != nil {
			m.similarity = s
		}
	}
}

// New creates a matcher using DefaultFloor and DefaultMetric unless overridden.
func New(opts ...Option) *Matcher {
	sim, _ := Metric(DefaultMetric)
	m := &Matcher{
		floor:      DefaultFloor,
		similarity: sim,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Floor returns the configured confidence floor.
func (m *Matcher) Floor() float64 {
	return m.floor
}

type query struct {
	tokens []string
	phrase string
}

func parseQuery(q string) query {
	return query{tokens: tokenize(q), phrase: phrase(q)}
}

func (q query) empty() bool {
	return q.phrase == ""
}

// Score returns the confidence that rec answers q, ignoring the floor.
func (m *Matcher) Score(q string, rec db.Record) float64 {
	pq := parseQuery(q)
	if pq.empty() {
		return 0
	}
	return m.score(pq, rec)
}

func (m *Matcher) score(q query, rec db.Record) float64 {
	return clamp(max(m.tokenScore(q, rec), m.phraseScore(q, rec)))
}

// tokenScore blends how much of the query is covered by the record's words with
// how much of the record the query touched.
func (m *Matcher) tokenScore(q query, rec db.Record) float64 {
	haystack := tokenize(rec.Intent + " " + rec.Command + " " + rec.Description)
	if len(q.tokens) == 0 || len(haystack) == 0 {
		return 0
	}

	hit := make([]bool, len(haystack))
	var sum float64
	for _, qt := range q.tokens {
		best, idx := 0.0, -1
		for i, ht := range haystack {
			if s := m.tokenSimilarity(qt, ht); s > best {
				best, idx = s, i
			}
		}
		if best >= correctionThreshold {
			sum += best
			hit[idx] = true
		}
	}

	coverage := sum / float64(len(q.tokens))
	density := float64(lo.Count(hit, true)) / float64(len(haystack))
	return coverageWeight*coverage + densityWeight*density
}

func (m *Matcher) tokenSimilarity(queryToken, storedToken string) float64 {
	if strings.HasPrefix(storedToken, queryToken) {
		return 1
	}
	return m.similarity(queryToken, storedToken)
}

// phraseScore compares the whole query with the intent; it only counts when the
// two are nearly the same sentence.
func (m *Matcher) phraseScore(q query, rec db.Record) float64 {
	intent := phrase(rec.Intent)
	if intent == "" {
		return 0
	}
	s := m.similarity(q.phrase, intent)
	if s < correctionThreshold {
		return 0
	}
	return s
}

// Best returns the highest-scoring record if it reaches the floor. On equal scores
// the record that comes first in records wins.
func (m *Matcher) Best(q string, records []db.Record) (Result, bool) {
	pq := parseQuery(q)
	if pq.empty() || len(records) == 0 {
		return Result{}, false
	}

	best := Result{Confidence: -1}
	for _, rec := range records {
		if s := m.score(pq, rec); s > best.Confidence {
			best = Result{Record: rec, Confidence: s}
		}
	}

	if best.Confidence < m.floor {
		return Result{}, false
	}
	return best, true
}

// Lookup is Best with ErrNoMatch in place of the boolean.
func (m *Matcher) Lookup(q string, records []db.Record) (Result, error) {
	res, ok := m.Best(q, records)
	if !ok {
		return Result{}, ErrNoMatch
	}
	return res, nil
}

// Rank returns every record at or above the floor, best first, at most limit
// results (limit <= 0 means no limit). Equal scores keep their input order.
func (m *Matcher) Rank(q string, records []db.Record, limit int) []Result {
	pq := parseQuery(q)
	if pq.empty() || len(records) == 0 {
		return nil
	}

	var results []Result
	for _, rec := range records {
		if s := m.score(pq, rec); s >= m.floor {
			results = append(results, Result{Record: rec, Confidence: s})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
