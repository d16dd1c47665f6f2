package itinerary

import (
	"fmt"
	"regexp"
	"strings"
)

var noteNewlineRe = regexp.MustCompile(`\n+`)

func collapseBlankRuns(s string) string {
	return trimEndSpace(blankRunRe.ReplaceAllString(s, "\n\n"))
}

// ReplaceDay splices newBlock into the given day's span, keeping the existing
// header line and stripping any duplicate day header from the replacement
// body. Returns the input unchanged when the day number is absent.
func ReplaceDay(markdown string, dayNum int, newBlock string) string {
	r := FindDayRange(markdown, dayNum)
	if r == nil {
		return markdown
	}
	header := fmt.Sprintf("## Day %d", dayNum)
	if lines := strings.SplitN(r.Raw, "\n", 2); lines[0] != "" {
		header = lines[0]
	}
	replacement := trimEndSpace(header + "\n" + StripDayHeader(newBlock))
	return collapseBlankRuns(markdown[:r.Start] + replacement + "\n\n" + markdown[r.End:])
}

// ReplaceDayRaw splices a whole-day block as-is, for callers that already
// supply a well-formed (typically sanitized) block including its header.
func ReplaceDayRaw(markdown string, dayNum int, newBlock string) string {
	r := FindDayRange(markdown, dayNum)
	if r == nil {
		return markdown
	}
	return collapseBlankRuns(markdown[:r.Start] + trimEndSpace(newBlock) + "\n\n" + markdown[r.End:])
}

// normalizeSectionBlock reduces a regenerated block to exactly one "### label"
// section: it drops any day header that slipped in, seeks the requested
// label, and cuts at the next differently-labeled section.
func normalizeSectionBlock(block, label string) string {
	normalized := strings.TrimSpace(strings.ReplaceAll(block, "\r\n", "\n"))
	if normalized == "" {
		return "### " + label
	}
	normalized = strings.TrimSpace(dayHeaderLineRe.ReplaceAllString(normalized, ""))
	lines := strings.Split(normalized, "\n")

	sectionTitle := func(line string) (string, bool) {
		trimmed := strings.TrimSpace(line)
		if m := subsectionHeaderRe.FindStringSubmatch(trimmed); m != nil {
			return strings.TrimSpace(m[1]), true
		}
		if allowedSectionSet[trimmed] {
			return trimmed, true
		}
		return "", false
	}

	start := 0
	for i, line := range lines {
		if title, ok := sectionTitle(line); ok && title == label {
			start = i
			break
		}
	}

	var bodyLines []string
	for i := start; i < len(lines); i++ {
		title, ok := sectionTitle(lines[i])
		if i != start && ok && title != label {
			break
		}
		if i == start && ok && title == label {
			continue
		}
		bodyLines = append(bodyLines, lines[i])
	}

	body := strings.TrimSpace(strings.Join(bodyLines, "\n"))
	if body == "" {
		return "### " + label
	}
	return "### " + label + "\n" + body
}

// ReplaceSection rebuilds the day with the given section's body replaced (or
// appended, when the label was absent), re-sanitizes the whole day, and
// splices it back. No-op when the day is not found.
func ReplaceSection(markdown string, dayNum int, label, newSectionBlock string) string {
	var day *DayBlock
	for _, d := range ExtractDays(markdown) {
		if d.DayNum == dayNum {
			day = &d
			break
		}
	}
	if day == nil {
		return markdown
	}

	normalizedRaw := NormalizeDayRaw(day.Raw)
	dayLines := strings.Split(normalizedRaw, "\n")
	headerLine := fmt.Sprintf("## Day %d", dayNum)
	if len(dayLines) > 0 && dayLines[0] != "" {
		headerLine = dayLines[0]
	}
	var preambleLines []string
	for i := 1; i < len(dayLines); i++ {
		if strings.HasPrefix(strings.TrimSpace(dayLines[i]), "### ") {
			break
		}
		preambleLines = append(preambleLines, dayLines[i])
	}

	sections := dedupeSections(ExtractSubsections(normalizedRaw))
	if len(sections) == 0 {
		return markdown
	}

	normalizedSection := normalizeSectionBlock(newSectionBlock, label)

	replaced := false
	blocks := make([]string, 0, len(sections)+1)
	for _, s := range sections {
		if s.Label != label {
			blocks = append(blocks, s.Raw)
			continue
		}
		replaced = true
		blocks = append(blocks, normalizedSection)
	}
	if !replaced {
		blocks = append(blocks, normalizedSection)
	}

	chunks := []string{headerLine}
	if preamble := trimEndSpace(strings.Join(preambleLines, "\n")); preamble != "" {
		chunks = append(chunks, preamble)
	}
	chunks = append(chunks, blocks...)

	rebuilt := trimEndSpace(strings.Join(chunks, "\n\n"))
	return ReplaceDayRaw(markdown, dayNum, SanitizeDayRaw(rebuilt, dayNum))
}

// AppendDay adds a fresh template day numbered one past the current maximum
// and returns the new document plus the assigned day number. Callers
// recompute nights as day count minus one afterwards.
func AppendDay(markdown string) (string, int) {
	maxDay := 0
	for _, d := range ExtractDays(markdown) {
		if d.DayNum > maxDay {
			maxDay = d.DayNum
		}
	}
	next := maxDay + 1
	block := fmt.Sprintf("## Day %d - 새 일정\n%s", next, EmptyDayTemplate)
	return trimEndSpace(markdown) + "\n\n" + block + "\n", next
}

// ClearDay replaces the day's content with the empty template while keeping
// its title and position. No-op when the day is not found.
func ClearDay(markdown string, dayNum int) string {
	for _, d := range ExtractDays(markdown) {
		if d.DayNum != dayNum {
			continue
		}
		block := fmt.Sprintf("## Day %d - %s\n%s", dayNum, d.Title, EmptyDayTemplate)
		return ReplaceDayRaw(markdown, dayNum, SanitizeDayRaw(block, dayNum))
	}
	return markdown
}

// RebuildSequential renumbers all days contiguously from 1 in ascending day
// order, optionally filtering one day out entirely (removeDayNum > 0). Text
// before the first day header is reattached as a prefix.
func RebuildSequential(markdown string, removeDayNum int) string {
	var days []DayBlock
	for _, d := range ExtractDays(markdown) {
		if removeDayNum > 0 && d.DayNum == removeDayNum {
			continue
		}
		days = append(days, d)
	}
	for i := 1; i < len(days); i++ {
		for j := i; j > 0 && days[j-1].DayNum > days[j].DayNum; j-- {
			days[j-1], days[j] = days[j], days[j-1]
		}
	}

	prefix := ""
	if loc := firstDayHeaderRe.FindStringIndex(markdown); loc != nil {
		prefix = trimEndSpace(markdown[:loc[0]])
	}

	blocks := make([]string, 0, len(days))
	for i, d := range days {
		blocks = append(blocks, trimEndSpace(fmt.Sprintf("## Day %d - %s\n%s", i+1, d.Title, StripDayHeader(d.Raw))))
	}

	if len(blocks) == 0 {
		return prefix
	}
	joined := strings.Join(blocks, "\n\n") + "\n"
	if prefix == "" {
		return joined
	}
	return prefix + "\n\n" + joined
}

// EditDayBody applies a free-text edit to a day's body, keeping the existing
// title. No-op when the day is missing or the body is empty after stripping
// any pasted-in day header.
func EditDayBody(markdown string, dayNum int, body string) string {
	cleanBody := StripDayHeader(body)
	if cleanBody == "" {
		return markdown
	}
	for _, d := range ExtractDays(markdown) {
		if d.DayNum != dayNum {
			continue
		}
		block := fmt.Sprintf("## Day %d - %s\n%s\n", dayNum, d.Title, cleanBody)
		return ReplaceDayRaw(markdown, dayNum, block)
	}
	return markdown
}

// AppendNote appends a "### 메모" subsection to the day, collapsing embedded
// newlines into a single " / "-joined line. No-op when the day is not found
// or the note is empty after trimming.
func AppendNote(markdown string, dayNum int, note string) string {
	clean := strings.TrimSpace(note)
	if clean == "" {
		return markdown
	}
	r := FindDayRange(markdown, dayNum)
	if r == nil {
		return markdown
	}
	lines := strings.SplitN(r.Raw, "\n", 2)
	header := fmt.Sprintf("## Day %d", dayNum)
	if lines[0] != "" {
		header = lines[0]
	}
	body := ""
	if len(lines) > 1 {
		body = lines[1]
	}
	clean = noteNewlineRe.ReplaceAllString(clean, " / ")
	nextBody := trimEndSpace(trimEndSpace(body) + "\n\n### " + NoteSection + "\n- " + clean)
	replacement := trimEndSpace(header + "\n" + nextBody)
	return collapseBlankRuns(markdown[:r.Start] + replacement + "\n\n" + markdown[r.End:])
}
