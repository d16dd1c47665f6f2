package itinerary

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Activity is one entry of the structured (JSON) generation path.
type Activity struct {
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	StayMinutes       int      `json:"stayMinutes"`
	MoveMinutesToNext int      `json:"moveMinutesToNext"`
	Lat               *float64 `json:"lat,omitempty"`
	Lng               *float64 `json:"lng,omitempty"`
}

// DayPlan is one structured day.
type DayPlan struct {
	Day        int        `json:"day"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

// ItineraryResponse is the structured-path schema the generator must match.
type ItineraryResponse struct {
	Days []DayPlan `json:"days"`
}

const (
	minStayMinutes = 30
	maxStayMinutes = 240
	maxMoveMinutes = 180
)

// mealKeywords tag an activity type as meal-like for section bucketing.
var mealKeywords = []string{
	"식사", "식당", "맛집", "음식", "레스토랑",
	"meal", "food", "restaurant", "dining", "lunch", "dinner",
}

func isMealType(activityType string) bool {
	lower := strings.ToLower(activityType)
	for _, kw := range mealKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func clampRound(v, min, max float64) int {
	return int(math.Round(math.Min(max, math.Max(min, v))))
}

func finiteNumber(v any) (float64, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// sanitizeActivity clamps stay to [30,240] and move to [0,180], both rounded,
// and drops non-finite coordinates. The per-day rule that the last activity
// moves 0 minutes is applied by ParseItineraryResponse after assembly.
func sanitizeActivity(name, activityType string, stay, move float64, lat, lng *float64) Activity {
	a := Activity{
		Name:              strings.TrimSpace(name),
		Type:              strings.TrimSpace(activityType),
		StayMinutes:       clampRound(stay, minStayMinutes, maxStayMinutes),
		MoveMinutesToNext: clampRound(move, 0, maxMoveMinutes),
	}
	if lat != nil && lng != nil {
		a.Lat, a.Lng = lat, lng
	}
	return a
}

// ParseItineraryResponse validates the generator's JSON strictly: any
// structural violation at any level aborts and returns nil — no partial
// itinerary is ever assembled from a half-valid payload.
func ParseItineraryResponse(rawJSON string) *ItineraryResponse {
	var root any
	if err := json.Unmarshal([]byte(rawJSON), &root); err != nil {
		return nil
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return nil
	}
	rawDays, ok := obj["days"].([]any)
	if !ok {
		return nil
	}

	out := &ItineraryResponse{Days: make([]DayPlan, 0, len(rawDays))}
	for _, rd := range rawDays {
		day, ok := parseDayPlan(rd)
		if !ok {
			return nil
		}
		out.Days = append(out.Days, day)
	}
	return out
}

func parseDayPlan(v any) (DayPlan, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return DayPlan{}, false
	}
	dayNum, ok := finiteNumber(obj["day"])
	if !ok || dayNum != math.Trunc(dayNum) {
		return DayPlan{}, false
	}
	theme, ok := obj["theme"].(string)
	if !ok {
		return DayPlan{}, false
	}
	rawActivities, ok := obj["activities"].([]any)
	if !ok {
		return DayPlan{}, false
	}

	day := DayPlan{Day: int(dayNum), Theme: theme, Activities: make([]Activity, 0, len(rawActivities))}
	for _, ra := range rawActivities {
		a, ok := parseActivity(ra)
		if !ok {
			return DayPlan{}, false
		}
		day.Activities = append(day.Activities, a)
	}
	if n := len(day.Activities); n > 0 {
		day.Activities[n-1].MoveMinutesToNext = 0
	}
	return day, true
}

func parseActivity(v any) (Activity, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return Activity{}, false
	}
	name, ok := obj["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return Activity{}, false
	}
	activityType, ok := obj["type"].(string)
	if !ok || strings.TrimSpace(activityType) == "" {
		return Activity{}, false
	}
	stay, ok := finiteNumber(obj["stayMinutes"])
	if !ok {
		return Activity{}, false
	}
	move, ok := finiteNumber(obj["moveMinutesToNext"])
	if !ok {
		return Activity{}, false
	}

	var lat, lng *float64
	if f, ok := finiteNumber(obj["lat"]); ok {
		lat = &f
	}
	if f, ok := finiteNumber(obj["lng"]); ok {
		lng = &f
	}

	return sanitizeActivity(name, activityType, stay, move, lat, lng), true
}

func activityLine(a Activity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- **%s** %s · 체류 %d분", a.Name, a.Type, a.StayMinutes)
	if a.MoveMinutesToNext > 0 {
		fmt.Fprintf(&b, " · 이동 %d분", a.MoveMinutesToNext)
	}
	return b.String()
}

// BuildMarkdownFromItinerary projects the typed structure into the markdown
// shape used everywhere else. Days are sorted ascending; meal-tagged
// activities alternate between lunch and dinner starting with lunch, the
// rest round-robin across morning, afternoon and night in input order. The
// four required sections always appear (placeholder when empty); night only
// when it received an activity.
func BuildMarkdownFromItinerary(it *ItineraryResponse) string {
	days := make([]DayPlan, len(it.Days))
	copy(days, it.Days)
	sort.SliceStable(days, func(i, j int) bool { return days[i].Day < days[j].Day })

	nonMealOrder := []string{SectionMorning, SectionAfternoon, SectionNight}

	blocks := make([]string, 0, len(days))
	for _, day := range days {
		buckets := make(map[string][]Activity)
		mealCount, nonMealCount := 0, 0
		for _, a := range day.Activities {
			if isMealType(a.Type) {
				label := SectionLunch
				if mealCount%2 == 1 {
					label = SectionDinner
				}
				buckets[label] = append(buckets[label], a)
				mealCount++
			} else {
				label := nonMealOrder[nonMealCount%len(nonMealOrder)]
				buckets[label] = append(buckets[label], a)
				nonMealCount++
			}
		}

		theme := strings.TrimSpace(day.Theme)
		if theme == "" {
			theme = "일정"
		}
		lines := []string{fmt.Sprintf("## Day %d - %s", day.Day, theme)}
		for _, label := range templateSectionOrder {
			lines = append(lines, "### "+label)
			if len(buckets[label]) == 0 {
				lines = append(lines, sectionPlaceholder(label))
				continue
			}
			for _, a := range buckets[label] {
				lines = append(lines, activityLine(a))
			}
		}
		if len(buckets[SectionNight]) > 0 {
			lines = append(lines, "### "+SectionNight)
			for _, a := range buckets[SectionNight] {
				lines = append(lines, activityLine(a))
			}
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return strings.Join(blocks, "\n\n") + "\n"
}
