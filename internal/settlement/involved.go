package settlement

import "strings"

// InvolvedDelimiter separates names in the stored form of an involved list.
// Participant names must not contain it.
const InvolvedDelimiter = ";"

// JoinInvolved encodes an involved list for storage.
func JoinInvolved(names []string) string {
	return strings.Join(names, InvolvedDelimiter)
}

// SplitInvolved decodes a stored involved list. Names are trimmed and empty
// segments dropped, so "A; B;" yields [A B].
func SplitInvolved(s string) []string {
	parts := strings.Split(s, InvolvedDelimiter)
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		names = append(names, p)
	}
	return names
}
