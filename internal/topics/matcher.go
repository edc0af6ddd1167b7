// ABOUTME: Ranked topic matching against transcript text with suggestion rendering
// ABOUTME: Keyword-ratio confidence with an exact-name bonus; fuzzy name lookup

package topics

import (
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/overhearhq/overhear/internal/config"
	"github.com/overhearhq/overhear/internal/log"
)

// Match is one ranked topic hit.
type Match struct {
	Topic      string
	Confidence float64
	Suggestion string
	Path       []string
}

// Matcher matches free text against a topic graph loaded from disk. The
// graph file is re-read when its mtime changes, so edits show up without a
// restart.
type Matcher struct {
	mu        sync.RWMutex
	graph     *Graph
	path      string
	modTime   time.Time
	threshold float64
	maxHits   int
}

// NewMatcher builds a matcher over the configured graph file. A missing or
// unreadable file yields an empty graph: matching degrades to no hits, it
// never errors.
func NewMatcher(cfg config.TopicGraph) *Matcher {
	m := &Matcher{
		graph:     &Graph{nodes: map[string]*Node{}, keywords: map[string][]string{}},
		path:      cfg.GraphPath,
		threshold: cfg.MatchingThreshold,
		maxHits:   cfg.MaxMatches,
	}
	m.reload()
	return m
}

// NewMatcherFromGraph wraps an already-parsed graph (used by tests and by
// callers that manage graph loading themselves).
func NewMatcherFromGraph(g *Graph, threshold float64, maxHits int) *Matcher {
	return &Matcher{graph: g, threshold: threshold, maxHits: maxHits}
}

func (m *Matcher) reload() {
	if m.path == "" {
		return
	}
	info, err := os.Stat(m.path)
	if err != nil {
		return
	}
	m.mu.RLock()
	unchanged := info.ModTime().Equal(m.modTime)
	m.mu.RUnlock()
	if unchanged {
		return
	}

	f, err := os.Open(m.path)
	if err != nil {
		log.Warn("topics: opening graph %s: %v", m.path, err)
		return
	}
	defer f.Close()

	g, err := ParseGraph(f)
	if err != nil {
		log.Warn("topics: parsing graph %s: %v", m.path, err)
		return
	}

	m.mu.Lock()
	m.graph = g
	m.modTime = info.ModTime()
	m.mu.Unlock()
	log.Debug("topics: loaded %d topics from %s", g.Len(), m.path)
}

// Match returns topics whose confidence clears the threshold, best first,
// capped at the configured maximum.
func (m *Matcher) Match(text string) []Match {
	m.reload()
	m.mu.RLock()
	g := m.graph
	threshold := m.threshold
	maxHits := m.maxHits
	m.mu.RUnlock()

	textLower := strings.ToLower(text)
	var matches []Match
	for name, keywords := range g.keywords {
		conf := confidence(textLower, name, keywords)
		if conf >= threshold {
			node := g.nodes[name]
			matches = append(matches, Match{
				Topic:      name,
				Confidence: conf,
				Suggestion: node.Suggestion,
				Path:       g.Path(name),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	if len(matches) > maxHits {
		matches = matches[:maxHits]
	}
	return matches
}

// confidence is the matched-keyword ratio with a bonus for the full topic
// name appearing verbatim, clamped to 1.0.
func confidence(textLower, name string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(textLower, kw) {
			hits++
		}
	}
	conf := float64(hits) / float64(len(keywords))
	if strings.Contains(textLower, strings.ToLower(name)) {
		conf += 0.3
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}

// Suggestions renders actionable guidance for matched topics: the stored
// suggestion when present, otherwise the root-to-topic path.
func (m *Matcher) Suggestions(matches []Match) []string {
	var out []string
	for _, match := range matches {
		if match.Suggestion != "" {
			out = append(out, match.Topic+": "+match.Suggestion)
		} else {
			out = append(out, "Consider exploring: "+strings.Join(match.Path, " -> "))
		}
	}
	return out
}

// Lookup finds topics whose names fuzzy-match the query, best first. Used
// by the CLI for interactive graph exploration.
func (m *Matcher) Lookup(query string) []string {
	m.reload()
	m.mu.RLock()
	names := m.graph.Names()
	m.mu.RUnlock()

	sort.Strings(names)
	results := fuzzy.Find(query, names)
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Str
	}
	return out
}
