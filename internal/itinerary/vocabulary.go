package itinerary

import (
	"regexp"
	"strings"
)

// Section labels recognized inside a day block. Stored documents use the
// Korean vocabulary; only the day header token ("## Day N") is English.
const (
	SectionMorning   = "오전"
	SectionLunch     = "점심"
	SectionAfternoon = "오후"
	SectionDinner    = "저녁"
	SectionNight     = "밤"

	// NoteSection is appended by AppendNote and is deliberately outside the
	// recognized vocabulary so sanitization carries it through verbatim.
	NoteSection = "메모"
)

// AllowedSections in canonical order. Night is optional and omitted from the
// empty-day template.
var AllowedSections = []string{SectionMorning, SectionLunch, SectionAfternoon, SectionDinner, SectionNight}

var allowedSectionSet = func() map[string]bool {
	set := make(map[string]bool, len(AllowedSections))
	for _, s := range AllowedSections {
		set[s] = true
	}
	return set
}()

// IsAllowedSection reports whether label belongs to the fixed vocabulary.
func IsAllowedSection(label string) bool {
	return allowedSectionSet[label]
}

// Day header contract shared with already stored documents: the separator may
// be an ASCII hyphen, en dash, em dash, or middle dot.
var (
	dayHeaderRe      = regexp.MustCompile(`(?m)^## Day (\d+)\s*(?:-|–|—|·)\s*(.+)$`)
	dayHeaderLineRe  = regexp.MustCompile(`^## Day \d+\s*(?:-|–|—|·)\s*[^\n]+\n?`)
	firstDayHeaderRe = regexp.MustCompile(`(?m)^## Day \d+\s*(?:-|–|—|·)\s*`)

	subsectionHeaderRe     = regexp.MustCompile(`^###\s+(.+)$`)
	subsectionHeaderLineRe = regexp.MustCompile(`^###\s+[^\n]*\n?`)

	blankRunRe = regexp.MustCompile(`\n{3,}`)
)

const (
	placePlaceholder = "- 장소를 입력하세요"
	mealPlaceholder  = "- 식사 장소를 입력하세요"
)

// sectionPlaceholder returns the filler bullet used when a recognized section
// has no content: meal sections get the meal wording, the rest get the place
// wording.
func sectionPlaceholder(label string) string {
	if label == SectionLunch || label == SectionDinner {
		return mealPlaceholder
	}
	return placePlaceholder
}

func sectionTemplate(label string) string {
	return "### " + label + "\n" + sectionPlaceholder(label)
}

// templateSectionOrder is the canonical per-day layout used when a day has no
// recognized sections at all.
var templateSectionOrder = []string{SectionMorning, SectionLunch, SectionAfternoon, SectionDinner}

// EmptyDayTemplate is the body of a freshly added or cleared day.
var EmptyDayTemplate = func() string {
	blocks := make([]string, 0, len(templateSectionOrder))
	for _, label := range templateSectionOrder {
		blocks = append(blocks, sectionTemplate(label))
	}
	return strings.Join(blocks, "\n")
}()

// sectionTailChars collects the final rune of every multi-rune label. The
// generator sometimes leaks that rune as a stray body line; see
// stripLeakedLabelTail.
var sectionTailChars = func() map[string]bool {
	tails := make(map[string]bool)
	for _, label := range AllowedSections {
		runes := []rune(label)
		if len(runes) > 1 {
			tails[string(runes[len(runes)-1])] = true
		}
	}
	return tails
}()
