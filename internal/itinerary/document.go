package itinerary

import (
	"fmt"
	"strings"
	"unicode"
)

// DayBlock is one day's span of the markdown document, from its header up to
// the next day header (or document end).
type DayBlock struct {
	DayNum int
	Title  string
	Raw    string
}

// SubsectionBlock is a labeled "### ..." block within a day. Label may fall
// outside the recognized vocabulary; such blocks pass through untouched.
type SubsectionBlock struct {
	Label string
	Raw   string
}

// Body returns the block's content without its header line.
func (s SubsectionBlock) Body() string {
	return strings.TrimSpace(subsectionHeaderLineRe.ReplaceAllString(s.Raw, ""))
}

// DayRange locates a day block by byte offsets for targeted splicing.
type DayRange struct {
	Start int
	End   int
	Raw   string
}

func trimEndSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// ExtractDays parses the document into its ordered day blocks. A document
// without any day header yields an empty slice; callers fall back to treating
// the whole document as unstructured prose.
func ExtractDays(markdown string) []DayBlock {
	matches := dayHeaderRe.FindAllStringSubmatchIndex(markdown, -1)
	days := make([]DayBlock, 0, len(matches))
	for i, m := range matches {
		end := len(markdown)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		num := 0
		fmt.Sscanf(markdown[m[2]:m[3]], "%d", &num)
		days = append(days, DayBlock{
			DayNum: num,
			Title:  markdown[m[4]:m[5]],
			Raw:    trimEndSpace(markdown[m[0]:end]),
		})
	}
	return days
}

// ExtractSubsections splits a day's raw span into its "### " blocks. Content
// before the first subsection header is not returned here; sanitization
// handles it as preamble.
func ExtractSubsections(dayRaw string) []SubsectionBlock {
	lines := strings.Split(dayRaw, "\n")
	var sections []SubsectionBlock
	label := ""
	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		sections = append(sections, SubsectionBlock{
			Label: label,
			Raw:   trimEndSpace(strings.Join(lines[start:end], "\n")),
		})
	}

	for i, line := range lines {
		m := subsectionHeaderRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		flush(i)
		label = strings.TrimSpace(m[1])
		start = i
	}
	flush(len(lines))
	return sections
}

// FindDayRange locates the span of a specific day number. It returns nil when
// the day is absent; mutation callers treat that as a no-op, not a failure.
func FindDayRange(markdown string, dayNum int) *DayRange {
	matches := dayHeaderRe.FindAllStringSubmatchIndex(markdown, -1)
	for i, m := range matches {
		num := 0
		fmt.Sscanf(markdown[m[2]:m[3]], "%d", &num)
		if num != dayNum {
			continue
		}
		end := len(markdown)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		return &DayRange{Start: m[0], End: end, Raw: trimEndSpace(markdown[m[0]:end])}
	}
	return nil
}

// StripDayHeader removes a leading "## Day N - ..." line from a block.
func StripDayHeader(block string) string {
	return strings.TrimSpace(dayHeaderLineRe.ReplaceAllString(block, ""))
}

// NightsFromMarkdown derives the nights count from the number of day blocks.
func NightsFromMarkdown(markdown string) int {
	days := len(ExtractDays(markdown))
	if days <= 1 {
		return 0
	}
	return days - 1
}
