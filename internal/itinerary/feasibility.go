package itinerary

import (
	"regexp"
	"strconv"
)

var moveMinutesRe = regexp.MustCompile(`이동\s*(\d+)\s*분`)

// DayAnalysis summarizes a markdown day for the feasibility check. The
// numbers come from text pattern counts, not real travel-time data.
type DayAnalysis struct {
	MoveMinutes int      `json:"moveMinutes"`
	ItemCount   int      `json:"itemCount"`
	Warnings    []string `json:"warnings"`
}

// AnalyzeDay sums the day's annotated move minutes, counts its list items
// and sections, and flags layouts that tend to be impractical.
func AnalyzeDay(raw string) DayAnalysis {
	moveMinutes := 0
	moveHints := moveMinutesRe.FindAllStringSubmatch(raw, -1)
	for _, m := range moveHints {
		if n, err := strconv.Atoi(m[1]); err == nil {
			moveMinutes += n
		}
	}
	itemCount := len(listItemRe.FindAllString(raw, -1))
	sectionCount := len(sectionLineRe.FindAllString(raw, -1))
	missingMoveHints := itemCount - len(moveHints)

	var warnings []string
	if itemCount >= 12 {
		warnings = append(warnings, "방문 장소가 많아 일정이 빡빡할 수 있어요.")
	}
	if moveMinutes >= 180 {
		warnings = append(warnings, "하루 총 이동 시간이 길어요.")
	}
	if sectionCount >= 6 && itemCount >= 10 {
		warnings = append(warnings, "섹션 수 대비 활동량이 많아요.")
	}
	if missingMoveHints >= 3 {
		warnings = append(warnings, "이동시간 표기가 부족해 현실성 판단이 어려워요.")
	}

	return DayAnalysis{MoveMinutes: moveMinutes, ItemCount: itemCount, Warnings: warnings}
}

// StructuredDayAnalysis is the typed-path equivalent of DayAnalysis, computed
// from activity fields instead of text patterns.
type StructuredDayAnalysis struct {
	TotalStay    int      `json:"totalStay"`
	TotalMove    int      `json:"totalMove"`
	TotalMinutes int      `json:"totalMinutes"`
	MoveRatio    float64  `json:"moveRatio"`
	Warnings     []string `json:"warnings"`
}

// DayTimeTotals sums stay and move minutes over a structured day.
func DayTimeTotals(day DayPlan) (totalStay, totalMove int) {
	for _, a := range day.Activities {
		totalStay += a.StayMinutes
		totalMove += a.MoveMinutesToNext
	}
	return totalStay, totalMove
}

// AnalyzeStructuredDay flags structured days that exceed 12 hours, carry
// excessive transit, spend too large a share of the day moving, or pack too
// many activities.
func AnalyzeStructuredDay(day DayPlan) StructuredDayAnalysis {
	totalStay, totalMove := DayTimeTotals(day)
	totalMinutes := totalStay + totalMove
	moveRatio := 0.0
	if totalMinutes > 0 {
		moveRatio = float64(totalMove) / float64(totalMinutes)
	}

	var warnings []string
	if totalMinutes > 720 {
		warnings = append(warnings, "하루 총 일정이 12시간을 초과합니다.")
	}
	if totalMove > 240 {
		warnings = append(warnings, "하루 이동 시간이 과도합니다.")
	}
	if totalMinutes > 0 && moveRatio > 0.4 {
		warnings = append(warnings, "이동 비율이 높아 일정이 비효율적일 수 있습니다.")
	}
	if len(day.Activities) >= 10 {
		warnings = append(warnings, "활동 수가 많아 일정이 빡빡할 수 있습니다.")
	}

	return StructuredDayAnalysis{
		TotalStay:    totalStay,
		TotalMove:    totalMove,
		TotalMinutes: totalMinutes,
		MoveRatio:    moveRatio,
		Warnings:     warnings,
	}
}
