package itinerary

import (
	"fmt"
	"strings"
	"testing"
)

func TestAnalyzeDay(t *testing.T) {
	tests := []struct {
		name            string
		raw             string
		wantMoveMinutes int
		wantItemCount   int
		wantWarnings    []string
	}{
		{
			name:            "light day has no warnings",
			raw:             "## Day 1 - 시내\n### 오전\n- **광장** 이동 10분\n- **시장** 이동 20분\n",
			wantMoveMinutes: 30,
			wantItemCount:   2,
			wantWarnings:    nil,
		},
		{
			name:            "long transit",
			raw:             "## Day 1 - 근교\n### 오전\n- **수목원** 이동 120분\n- **온천** 이동 90분\n",
			wantMoveMinutes: 210,
			wantItemCount:   2,
			wantWarnings:    []string{"하루 총 이동 시간이 길어요."},
		},
		{
			name: "too many items",
			raw: func() string {
				var b strings.Builder
				b.WriteString("## Day 1 - 욕심\n### 오전\n")
				for i := 0; i < 12; i++ {
					fmt.Fprintf(&b, "- 장소 %d 이동 5분\n", i)
				}
				return b.String()
			}(),
			wantMoveMinutes: 60,
			wantItemCount:   12,
			wantWarnings:    []string{"방문 장소가 많아 일정이 빡빡할 수 있어요."},
		},
		{
			name:            "missing move hints",
			raw:             "## Day 1 - 표기 없음\n### 오전\n- 첫째\n- 둘째\n- 셋째\n",
			wantMoveMinutes: 0,
			wantItemCount:   3,
			wantWarnings:    []string{"이동시간 표기가 부족해 현실성 판단이 어려워요."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeDay(tt.raw)
			if got.MoveMinutes != tt.wantMoveMinutes {
				t.Errorf("MoveMinutes = %d, want %d", got.MoveMinutes, tt.wantMoveMinutes)
			}
			if got.ItemCount != tt.wantItemCount {
				t.Errorf("ItemCount = %d, want %d", got.ItemCount, tt.wantItemCount)
			}
			if len(got.Warnings) != len(tt.wantWarnings) {
				t.Fatalf("Warnings = %v, want %v", got.Warnings, tt.wantWarnings)
			}
			for i := range tt.wantWarnings {
				if got.Warnings[i] != tt.wantWarnings[i] {
					t.Errorf("Warnings[%d] = %q, want %q", i, got.Warnings[i], tt.wantWarnings[i])
				}
			}
		})
	}
}

func TestAnalyzeStructuredDayTwelveHourLimit(t *testing.T) {
	day := DayPlan{
		Day:   1,
		Theme: "빡빡한 하루",
		Activities: []Activity{
			{Name: "박물관", Type: "관광", StayMinutes: 240, MoveMinutesToNext: 60},
			{Name: "공원", Type: "휴식", StayMinutes: 240, MoveMinutesToNext: 80},
			{Name: "전망대", Type: "관광", StayMinutes: 120, MoveMinutesToNext: 60},
		},
	}
	got := AnalyzeStructuredDay(day)
	if got.TotalStay != 600 || got.TotalMove != 200 || got.TotalMinutes != 800 {
		t.Fatalf("totals = stay %d move %d total %d", got.TotalStay, got.TotalMove, got.TotalMinutes)
	}
	// 200 move minutes stays under the 240 threshold and the 0.4 ratio, so
	// only the 12-hour warning fires.
	if len(got.Warnings) != 1 || got.Warnings[0] != "하루 총 일정이 12시간을 초과합니다." {
		t.Errorf("Warnings = %v", got.Warnings)
	}
}

func TestAnalyzeStructuredDayMoveHeavy(t *testing.T) {
	day := DayPlan{
		Day: 1,
		Activities: []Activity{
			{Name: "마을", Type: "관광", StayMinutes: 60, MoveMinutesToNext: 150},
			{Name: "해변", Type: "휴식", StayMinutes: 90, MoveMinutesToNext: 120},
		},
	}
	got := AnalyzeStructuredDay(day)
	if got.TotalMove != 270 {
		t.Fatalf("TotalMove = %d", got.TotalMove)
	}
	wantWarnings := []string{
		"하루 이동 시간이 과도합니다.",
		"이동 비율이 높아 일정이 비효율적일 수 있습니다.",
	}
	if len(got.Warnings) != len(wantWarnings) {
		t.Fatalf("Warnings = %v, want %v", got.Warnings, wantWarnings)
	}
	for i := range wantWarnings {
		if got.Warnings[i] != wantWarnings[i] {
			t.Errorf("Warnings[%d] = %q, want %q", i, got.Warnings[i], wantWarnings[i])
		}
	}
}

func TestAnalyzeStructuredDayEmpty(t *testing.T) {
	got := AnalyzeStructuredDay(DayPlan{Day: 1})
	if got.TotalMinutes != 0 || got.MoveRatio != 0 || len(got.Warnings) != 0 {
		t.Errorf("empty day analysis = %+v", got)
	}
}
