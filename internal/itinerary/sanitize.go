package itinerary

import (
	"fmt"
	"regexp"
	"strings"
)

var labelTrailerRe = regexp.MustCompile(`[:：\-–—]+$`)

// NormalizeDayRaw promotes bare label lines (a recognized label emitted
// without its "### " marker) into proper subsection headers.
func NormalizeDayRaw(raw string) string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if allowedSectionSet[trimmed] {
			lines[i] = "### " + trimmed
		}
	}
	return strings.Join(lines, "\n")
}

// dedupeSections keeps only the last occurrence of each recognized label;
// later duplicates from regeneration are treated as corrections. Unrecognized
// sections always survive.
func dedupeSections(sections []SubsectionBlock) []SubsectionBlock {
	lastIdx := make(map[string]int)
	for i, s := range sections {
		if allowedSectionSet[s.Label] {
			lastIdx[s.Label] = i
		}
	}
	out := make([]SubsectionBlock, 0, len(sections))
	for i, s := range sections {
		if allowedSectionSet[s.Label] && lastIdx[s.Label] != i {
			continue
		}
		out = append(out, s)
	}
	return out
}

// stripLeakedLabelTail drops a generator artifact: the last glyph of a
// multi-character label (e.g. "점심" -> "심") leaking in as a stray line
// before any real content. Kept as its own pass so a changed vocabulary can
// retire it independently.
func stripLeakedLabelTail(lines []string, label string) []string {
	tails := make(map[string]bool, len(sectionTailChars)+1)
	for t := range sectionTailChars {
		tails[t] = true
	}
	if runes := []rune(label); len(runes) > 1 {
		tails[string(runes[len(runes)-1])] = true
	}

	out := make([]string, 0, len(lines))
	seenContent := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !seenContent && len([]rune(trimmed)) == 1 && tails[trimmed] {
			continue
		}
		if trimmed != "" && !isLabelLine(trimmed) {
			seenContent = true
		}
		out = append(out, line)
	}
	return out
}

func isLabelLine(trimmed string) bool {
	normalized := strings.TrimSpace(labelTrailerRe.ReplaceAllString(trimmed, ""))
	if allowedSectionSet[normalized] {
		return true
	}
	if rest, ok := strings.CutPrefix(trimmed, "### "); ok {
		return allowedSectionSet[strings.TrimSpace(rest)]
	}
	return false
}

// CleanSectionBody repairs a recognized section's body: leaked label tails,
// label lines that drifted into the body, and one-character echoes of the
// previous line.
func CleanSectionBody(body, label string) string {
	lines := stripLeakedLabelTail(strings.Split(body, "\n"), label)
	cleaned := make([]string, 0, len(lines))
	prevTrimmed := ""

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			cleaned = append(cleaned, line)
			prevTrimmed = ""
			continue
		}

		normalized := strings.TrimSpace(labelTrailerRe.ReplaceAllString(trimmed, ""))
		if allowedSectionSet[normalized] {
			prevTrimmed = normalized
			continue
		}
		if rest, ok := strings.CutPrefix(trimmed, "### "); ok {
			if title := strings.TrimSpace(rest); allowedSectionSet[title] {
				prevTrimmed = title
				continue
			}
		}
		if len([]rune(trimmed)) == 1 && prevTrimmed != "" && strings.HasSuffix(prevTrimmed, trimmed) {
			continue
		}

		cleaned = append(cleaned, line)
		prevTrimmed = trimmed
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// allowedSectionOrder returns the recognized labels in order of first
// appearance within the day's raw text.
func allowedSectionOrder(raw string) []string {
	seen := make(map[string]bool)
	var order []string
	for _, s := range ExtractSubsections(raw) {
		if !allowedSectionSet[s.Label] || seen[s.Label] {
			continue
		}
		seen[s.Label] = true
		order = append(order, s.Label)
	}
	return order
}

// SanitizeDayRaw converts possibly malformed raw day text into the canonical
// layout: header, preamble, recognized sections in effective order (template
// placeholders where absent), then unrecognized sections verbatim-cleaned.
// It never fails — the worst case is a template-filled empty day — and is
// idempotent.
func SanitizeDayRaw(raw string, dayNum int) string {
	normalized := NormalizeDayRaw(raw)
	lines := strings.Split(normalized, "\n")

	headerLine := fmt.Sprintf("## Day %d", dayNum)
	if len(lines) > 0 && strings.HasPrefix(lines[0], "## Day ") {
		headerLine = lines[0]
	}

	var preambleLines []string
	for i := 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, "### ") {
			break
		}
		if trimmed != "" && !allowedSectionSet[trimmed] {
			preambleLines = append(preambleLines, lines[i])
		}
	}

	rawSections := dedupeSections(ExtractSubsections(normalized))
	bodyByLabel := make(map[string]string, len(rawSections))
	var extras []SubsectionBlock
	for _, s := range rawSections {
		if allowedSectionSet[s.Label] {
			bodyByLabel[s.Label] = CleanSectionBody(s.Body(), s.Label)
		} else {
			extras = append(extras, s)
		}
	}

	order := allowedSectionOrder(normalized)
	if len(order) == 0 {
		order = templateSectionOrder
	}

	chunks := []string{headerLine}
	if preamble := trimEndSpace(strings.Join(preambleLines, "\n")); preamble != "" {
		chunks = append(chunks, preamble)
	}
	for _, label := range order {
		if body := bodyByLabel[label]; body != "" {
			chunks = append(chunks, "### "+label+"\n"+body)
		} else {
			chunks = append(chunks, sectionTemplate(label))
		}
	}
	for _, s := range extras {
		if body := CleanSectionBody(s.Body(), s.Label); body != "" {
			chunks = append(chunks, "### "+s.Label+"\n"+body)
		} else {
			chunks = append(chunks, "### "+s.Label)
		}
	}

	return trimEndSpace(strings.Join(chunks, "\n\n"))
}
