package itinerary

import (
	"strings"
	"testing"
)

const sampleDoc = `여행 개요: 2박 3일 추천 코스입니다.

## Day 1 - 구시가지 산책
### 오전
- **중앙 광장** 아침 산책 · 이동 10분
### 점심
- **할머니 국수집** 대표 메뉴 소개
### 오후
- **성곽 둘레길** 전망 포인트

## Day 2 – 미술관과 카페
### 오전
- **시립 미술관** 상설전 관람
### 저녁
- **강변 야시장** 길거리 음식

## Day 3 · 근교 나들이
### 오전
- **호수 공원** 자전거 대여
`

func TestExtractDays(t *testing.T) {
	days := ExtractDays(sampleDoc)
	if len(days) != 3 {
		t.Fatalf("ExtractDays returned %d days, want 3", len(days))
	}

	wantTitles := []string{"구시가지 산책", "미술관과 카페", "근교 나들이"}
	for i, day := range days {
		if day.DayNum != i+1 {
			t.Errorf("day %d: DayNum = %d, want %d", i, day.DayNum, i+1)
		}
		if day.Title != wantTitles[i] {
			t.Errorf("day %d: Title = %q, want %q", i, day.Title, wantTitles[i])
		}
		if !strings.HasPrefix(day.Raw, "## Day ") {
			t.Errorf("day %d: Raw does not start with its header: %q", i, day.Raw)
		}
	}
	if strings.Contains(days[0].Raw, "미술관") {
		t.Errorf("day 1 raw bleeds into day 2: %q", days[0].Raw)
	}
}

func TestExtractDaysNoHeaders(t *testing.T) {
	if days := ExtractDays("그냥 자유 여행 텍스트입니다.\n- 목록 항목"); len(days) != 0 {
		t.Fatalf("ExtractDays on prose = %d days, want 0", len(days))
	}
}

func TestExtractSubsections(t *testing.T) {
	days := ExtractDays(sampleDoc)
	sections := ExtractSubsections(days[0].Raw)
	if len(sections) != 3 {
		t.Fatalf("got %d subsections, want 3", len(sections))
	}
	wantLabels := []string{SectionMorning, SectionLunch, SectionAfternoon}
	for i, s := range sections {
		if s.Label != wantLabels[i] {
			t.Errorf("section %d: Label = %q, want %q", i, s.Label, wantLabels[i])
		}
	}
	if body := sections[1].Body(); body != "- **할머니 국수집** 대표 메뉴 소개" {
		t.Errorf("lunch body = %q", body)
	}
}

func TestFindDayRange(t *testing.T) {
	r := FindDayRange(sampleDoc, 2)
	if r == nil {
		t.Fatal("FindDayRange(2) = nil, want range")
	}
	if !strings.HasPrefix(r.Raw, "## Day 2") {
		t.Errorf("range raw starts with %q", r.Raw[:20])
	}
	if got := trimEndSpace(sampleDoc[r.Start:r.End]); got != r.Raw {
		t.Errorf("range offsets do not reproduce raw span")
	}

	if r := FindDayRange(sampleDoc, 9); r != nil {
		t.Errorf("FindDayRange(9) = %+v, want nil", r)
	}
}

func TestStripDayHeader(t *testing.T) {
	block := "## Day 4 - 쇼핑 데이\n### 오전\n- **백화점**"
	if got := StripDayHeader(block); got != "### 오전\n- **백화점**" {
		t.Errorf("StripDayHeader = %q", got)
	}
	if got := StripDayHeader("### 오전\n- 내용"); got != "### 오전\n- 내용" {
		t.Errorf("StripDayHeader without header = %q", got)
	}
}

func TestNightsFromMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     int
	}{
		{"three days", sampleDoc, 2},
		{"one day", "## Day 1 - 당일치기\n### 오전\n- 장소", 0},
		{"no days", "자유 텍스트", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NightsFromMarkdown(tt.markdown); got != tt.want {
				t.Errorf("NightsFromMarkdown = %d, want %d", got, tt.want)
			}
		})
	}
}
