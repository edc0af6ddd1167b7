// ABOUTME: Topic graph parsing from the line-oriented "Parent -> Child" format
// ABOUTME: Each edge may carry a suggestion string used for topic guidance

package topics

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// Node is one topic in the graph.
type Node struct {
	Name       string
	Parent     string
	Children   []string
	Suggestion string
}

// Graph is a parsed topic hierarchy with per-topic keyword indexes.
type Graph struct {
	nodes    map[string]*Node
	keywords map[string][]string
}

// edgePattern matches: Parent -> Child (suggestion: "text")
// The suggestion clause is optional; quotes may be single or double.
var edgePattern = regexp.MustCompile(`^(.+?)\s*->\s*(.+?)(?:\s*\(suggestion:\s*["'](.+?)["']\))?$`)

// ParseGraph reads a topic graph definition. Blank lines and '#' comments
// are skipped; malformed lines are ignored rather than fatal so a partially
// edited graph still loads.
func ParseGraph(r io.Reader) (*Graph, error) {
	g := &Graph{
		nodes:    make(map[string]*Node),
		keywords: make(map[string][]string),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := edgePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		parent, child, suggestion := strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), m[3]

		p := g.ensure(parent)
		c := g.ensure(child)
		c.Parent = parent
		if suggestion != "" {
			c.Suggestion = suggestion
		}
		if !contains(p.Children, child) {
			p.Children = append(p.Children, child)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) ensure(name string) *Node {
	if n, ok := g.nodes[name]; ok {
		return n
	}
	n := &Node{Name: name}
	g.nodes[name] = n
	g.keywords[name] = extractKeywords(name)
	return n
}

// Len returns the number of topics.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node returns the named topic, or nil.
func (g *Graph) Node(name string) *Node {
	return g.nodes[name]
}

// Names returns all topic names in unspecified order.
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	return names
}

// Path walks parent links from the root down to the named topic.
func (g *Graph) Path(name string) []string {
	var path []string
	current := name
	for current != "" && len(path) < 6 {
		path = append([]string{current}, path...)
		n := g.nodes[current]
		if n == nil {
			break
		}
		current = n.Parent
	}
	return path
}

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// extractKeywords lowercases and splits a topic name, adding lightly
// stemmed variants so "Pipelines" also matches "pipeline".
func extractKeywords(name string) []string {
	words := wordPattern.FindAllString(strings.ToLower(name), -1)

	seen := make(map[string]struct{})
	var keywords []string
	add := func(w string) {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			keywords = append(keywords, w)
		}
	}
	for _, w := range words {
		add(w)
		if strings.HasSuffix(w, "ing") && len(w) > 4 {
			add(strings.TrimSuffix(w, "ing"))
		} else if strings.HasSuffix(w, "s") && len(w) > 3 {
			add(strings.TrimSuffix(w, "s"))
		}
	}
	return keywords
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
