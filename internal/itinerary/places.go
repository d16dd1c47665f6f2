package itinerary

import (
	"regexp"
	"strings"
)

// Place candidates feed the geocoding lookup; extraction is heuristic and
// capped so one document cannot fan out into unbounded upstream calls.
const maxPlaceCandidates = 20

var (
	boldSpanRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	linkSpanRe   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	moveHintRe   = regexp.MustCompile(`이동\s*\d+\s*분`)
	bulletRe     = regexp.MustCompile(`^[-*•]\s+`)
	nameSplitRe  = regexp.MustCompile(`[.·|\-]`)
	anyLinkRe    = regexp.MustCompile(`\[.*?\]\(.*?\)`)
	listItemRe   = regexp.MustCompile(`(?m)^- `)
	sectionLineRe = regexp.MustCompile(`(?m)^### `)
)

// PlaceCandidate tags an extracted place name with enough metadata to
// re-attach a map marker to its day and section after lookup. Order is a
// 1-based running index per day across all of its sections.
type PlaceCandidate struct {
	Name    string `json:"name"`
	DayNum  int    `json:"dayNum"`
	Order   int    `json:"order"`
	Section string `json:"section,omitempty"`
}

// plainName strips bullets, links and move-time annotations, then takes the
// text before the first separator character.
func plainName(line string) string {
	s := bulletRe.ReplaceAllString(line, "")
	s = anyLinkRe.ReplaceAllString(s, "")
	s = moveHintRe.ReplaceAllString(s, "")
	if parts := nameSplitRe.Split(s, 2); len(parts) > 0 {
		s = parts[0]
	}
	return strings.TrimSpace(s)
}

func candidateName(line string) string {
	if m := boldSpanRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := linkSpanRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	return plainName(line)
}

// ExtractPlaceCandidates collects place names from list items across the
// whole document: the bolded span wins, then linked text, then the leading
// plain text. Deduplicated by exact string, capped at 20.
func ExtractPlaceCandidates(markdown string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "- ") {
			continue
		}
		name := candidateName(trimmed)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
		if len(out) >= maxPlaceCandidates {
			break
		}
	}
	return out
}

// ExtractPlaceCandidatesWithMeta runs the same name heuristic scoped per day
// and section, for geocoding requests that need to map results back onto the
// itinerary.
func ExtractPlaceCandidatesWithMeta(markdown string) []PlaceCandidate {
	var all []PlaceCandidate
	for _, day := range ExtractDays(markdown) {
		section := ""
		order := 0
		for _, line := range strings.Split(day.Raw, "\n") {
			trimmed := strings.TrimSpace(line)
			if rest, ok := strings.CutPrefix(trimmed, "### "); ok {
				section = strings.TrimSpace(rest)
				continue
			}
			if !bulletRe.MatchString(trimmed) && !boldSpanRe.MatchString(trimmed) {
				continue
			}
			name := candidateName(trimmed)
			if name == "" {
				continue
			}
			order++
			all = append(all, PlaceCandidate{
				Name:    name,
				DayNum:  day.DayNum,
				Order:   order,
				Section: section,
			})
		}
	}
	return all
}
