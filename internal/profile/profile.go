// ABOUTME: Markdown resume parsing into a structured user profile
// ABOUTME: Produces the short summary block injected into prompts

package profile

import (
	"regexp"
	"strings"
)

// Profile is a parsed user resume.
type Profile struct {
	Name       string
	Education  []string
	Skills     []string
	Experience []string
	Projects   []string
	Summary    string
}

var (
	headingPattern = regexp.MustCompile(`^#{1,3}\s*(.+)$`)
	bulletPattern  = regexp.MustCompile(`^[•\-\*\+]\s*`)
	jobPattern     = regexp.MustCompile(`(?i)(.+?)\s*(?:\bat\b|@)\s*(.+?)(?:\s*\|\s*(.+?))?\s*$`)
)

// ParseResume parses markdown resume content. Sections are delimited by
// headings; the first heading is taken as the name.
func ParseResume(content string) Profile {
	var p Profile

	for _, line := range strings.Split(content, "\n") {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			p.Name = strings.TrimSpace(m[1])
			break
		}
		if t := strings.TrimSpace(line); t != "" {
			p.Name = t
			break
		}
	}

	sections := splitSections(content)
	p.Education = bullets(sections["education"])
	p.Skills = skills(sections["skills"])
	p.Experience = experience(sections["experience"])
	p.Projects = bullets(sections["projects"])
	p.Summary = summarize(p)
	return p
}

func splitSections(content string) map[string]string {
	sections := make(map[string]string)
	var current string
	var body []string

	flush := func() {
		if current != "" {
			sections[current] = strings.Join(body, "\n")
		}
	}

	for _, line := range strings.Split(content, "\n") {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flush()
			current = strings.ToLower(strings.TrimSpace(m[1]))
			body = body[:0]
			continue
		}
		if current != "" {
			body = append(body, line)
		}
	}
	flush()
	return sections
}

func bullets(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") ||
			strings.HasPrefix(line, "*") || strings.HasPrefix(line, "+") {
			if b := strings.TrimSpace(bulletPattern.ReplaceAllString(line, "")); b != "" {
				out = append(out, b)
			}
		}
	}
	return out
}

// skills handles both bulleted and comma-separated single-line formats,
// keeping the top 10.
func skills(text string) []string {
	var out []string
	if bl := bullets(text); len(bl) > 0 {
		for _, b := range bl {
			out = append(out, splitCommas(b)...)
		}
	} else {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			out = append(out, splitCommas(line)...)
		}
	}
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

// experience extracts "title at company (duration)" entries, falling back
// to plain bullets; the 5 most recent are kept.
func experience(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(bulletPattern.ReplaceAllString(strings.TrimSpace(line), ""))
		if line == "" {
			continue
		}
		m := jobPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entry := strings.TrimSpace(m[1]) + " at " + strings.TrimSpace(m[2])
		if d := strings.TrimSpace(m[3]); d != "" {
			entry += " (" + d + ")"
		}
		out = append(out, entry)
	}
	if len(out) == 0 {
		out = bullets(text)
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func summarize(p Profile) string {
	var parts []string
	if len(p.Education) > 0 {
		parts = append(parts, "- "+p.Education[0])
	}
	if len(p.Skills) > 0 {
		top := p.Skills
		if len(top) > 5 {
			top = top[:5]
		}
		parts = append(parts, "- Skills: "+strings.Join(top, ", "))
	}
	if len(p.Experience) > 0 {
		parts = append(parts, "- "+p.Experience[0])
	}
	return strings.Join(parts, "\n")
}

func splitCommas(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
