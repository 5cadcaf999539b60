package domain

import "strings"

// ParseShortages splits a raw comma-separated shortage list into clean
// entries: whitespace trimmed, empties dropped. "Cement, Steel, " becomes
// ["Cement", "Steel"].
func ParseShortages(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Normalize cleans an edited document in place before it is persisted.
// It trims shortage entries and drops the empty ones; it does not enforce
// the soft invariants (id uniqueness, non-negative figures, enum membership)
// and never reorders anything.
func (w *WeeklyData) Normalize() {
	for i := range w.Projects {
		w.Projects[i].CriticalShortages = normalizeShortages(w.Projects[i].CriticalShortages)
	}
}

func normalizeShortages(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if trimmed := strings.TrimSpace(e); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
