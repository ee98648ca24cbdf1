package advisor

import "strings"

// StripCodeFence removes surrounding markdown code-fence delimiters
// (``` with an optional "json" tag) from a response that is expected to
// carry a structured payload.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
