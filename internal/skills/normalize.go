// Package skills cleans up the raw skills list before it is sent for description.
package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// aliases maps lower-cased skill spellings to their canonical names
var aliases = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
}

// NormalizeName returns the canonical form of a skill name.
// Known aliases are mapped, a single all-lowercase word is capitalized, and
// anything else is returned trimmed but otherwise as written.
func NormalizeName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}

	lower := strings.ToLower(name)
	if canonical, ok := aliases[lower]; ok {
		return canonical
	}

	if name == lower && !strings.Contains(name, " ") {
		r, size := utf8.DecodeRuneInString(name)
		return string(unicode.ToUpper(r)) + name[size:]
	}
	return name
}

// Normalize canonicalizes names and drops blanks and case-insensitive
// duplicates, keeping the first occurrence's position.
func Normalize(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		n := NormalizeName(name)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}
