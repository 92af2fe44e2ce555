// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock removes a markdown code fence around a reply.
// Anything outside a fence is left in place, so prose around bare JSON
// still fails to parse.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}

	body := strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")

	// drop a language tag such as "json" on the opening line
	if idx := strings.Index(body, "\n"); idx >= 0 {
		tag := strings.TrimSpace(body[:idx])
		if !strings.ContainsAny(tag, " {[") {
			body = body[idx+1:]
		}
	}
	return strings.TrimSpace(body)
}
