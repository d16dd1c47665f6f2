package itinerary

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtractPlaceCandidates(t *testing.T) {
	doc := strings.Join([]string{
		"## Day 1 - 시내",
		"### 오전",
		"- **중앙 광장** 아침 산책 · 이동 15분",
		"- [왕궁 정원](https://maps.example/palace) 입장권 필요",
		"- 벼룩시장 · 주말만 운영",
		"### 점심",
		"- **중앙 광장** 근처 카페",
		"- 식당가 - 현지식 추천",
	}, "\n")

	got := ExtractPlaceCandidates(doc)
	want := []string{"중앙 광장", "왕궁 정원", "벼룩시장", "식당가"}
	if len(got) != len(want) {
		t.Fatalf("candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractPlaceCandidatesNameFallback(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"bold wins over link", "- **성당**에서 [투어](https://t) 예약", "성당"},
		{"link text when no bold", "- [국립 박물관](https://m) 무료", "국립 박물관"},
		{"plain text before separator", "- 해변 산책로 · 일몰 명소", "해변 산책로"},
		{"move hint stripped", "- 전망대 이동 30분", "전망대"},
		{"hyphen separator", "- 야시장 - 저녁 추천", "야시장"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPlaceCandidates(tt.line)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("ExtractPlaceCandidates(%q) = %v, want [%q]", tt.line, got, tt.want)
			}
		})
	}
}

func TestExtractPlaceCandidatesCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&b, "- **장소 %d**\n", i)
	}
	got := ExtractPlaceCandidates(b.String())
	if len(got) != maxPlaceCandidates {
		t.Errorf("cap not applied: got %d candidates", len(got))
	}
}

func TestExtractPlaceCandidatesWithMeta(t *testing.T) {
	doc := strings.Join([]string{
		"## Day 1 - 시내",
		"### 오전",
		"- **광장**",
		"### 점심",
		"- **국수집**",
		"",
		"## Day 2 - 근교",
		"### 오후",
		"- **호수**",
	}, "\n")

	got := ExtractPlaceCandidatesWithMeta(doc)
	want := []PlaceCandidate{
		{Name: "광장", DayNum: 1, Order: 1, Section: "오전"},
		{Name: "국수집", DayNum: 1, Order: 2, Section: "점심"},
		{Name: "호수", DayNum: 2, Order: 1, Section: "오후"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
