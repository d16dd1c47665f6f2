package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smarttrip/internal/itinerary"
	"smarttrip/internal/models/request_models"
	"smarttrip/pkg/utils"
)

type stubChatClient struct {
	reply     string
	jsonReply string
	err       error

	lastPrompt string
}

func (s *stubChatClient) Complete(_ context.Context, _, userPrompt string, _ int) (string, error) {
	s.lastPrompt = userPrompt
	return s.reply, s.err
}

func (s *stubChatClient) CompleteJSON(_ context.Context, _, userPrompt string, _ int) (string, error) {
	s.lastPrompt = userPrompt
	return s.jsonReply, s.err
}

func testParams() request_models.TripParameters {
	return request_models.TripParameters{Country: "일본", City: "오사카", Nights: 1}
}

func TestGenerateItinerary(t *testing.T) {
	chat := &stubChatClient{reply: strings.Join([]string{
		"## Day 1 - 도톤보리",
		"### 오전",
		"- **오사카성** 천수각 전망 이동 20분",
		"### 점심",
		"- **이치란 라멘**",
		"",
		"## Day 2 - 근교",
		"### 오전",
		"- **나라 공원**",
	}, "\n")}
	svc := NewPlannerService(chat, chat)

	got, err := svc.GenerateItinerary(context.Background(), testParams())
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}
	if got.Days != 2 {
		t.Errorf("Days = %d, want 2", got.Days)
	}
	if !strings.Contains(got.Markdown, "오사카성") {
		t.Errorf("generated markdown lost content:\n%s", got.Markdown)
	}
	if len(got.Feasibility) != 2 || got.Feasibility[0].MoveMinutes != 20 {
		t.Errorf("feasibility report wrong: %+v", got.Feasibility)
	}
	if !strings.Contains(chat.lastPrompt, "오사카") || !strings.Contains(chat.lastPrompt, "2일 (1박)") {
		t.Errorf("prompt missing trip facts:\n%s", chat.lastPrompt)
	}
}

func TestGenerateItineraryInvalidParams(t *testing.T) {
	svc := NewPlannerService(&stubChatClient{}, &stubChatClient{})
	_, err := svc.GenerateItinerary(context.Background(), request_models.TripParameters{Country: "일본", City: "오사카", Nights: 99})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGenerateItineraryUpstreamFailures(t *testing.T) {
	tests := []struct {
		name string
		stub *stubChatClient
	}{
		{"api error", &stubChatClient{err: errors.New("boom")}},
		{"no day headers", &stubChatClient{reply: "일정을 만들 수 없습니다."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPlannerService(tt.stub, tt.stub)
			_, err := svc.GenerateItinerary(context.Background(), testParams())
			if !errors.Is(err, utils.ErrUpstreamFailure) {
				t.Errorf("err = %v, want ErrUpstreamFailure", err)
			}
		})
	}
}

func TestGenerateStructured(t *testing.T) {
	chat := &stubChatClient{jsonReply: `{"days":[
		{"day":1,"theme":"시내","activities":[
			{"name":"오사카성","type":"관광","stayMinutes":120,"moveMinutesToNext":20},
			{"name":"라멘집","type":"식당","stayMinutes":60,"moveMinutesToNext":0}
		]},
		{"day":2,"theme":"근교","activities":[
			{"name":"나라 공원","type":"산책","stayMinutes":900,"moveMinutesToNext":0}
		]}
	]}`}
	svc := NewPlannerService(&stubChatClient{}, chat)

	got, err := svc.GenerateStructured(context.Background(), testParams())
	if err != nil {
		t.Fatalf("GenerateStructured: %v", err)
	}
	if len(got.Itinerary.Days) != 2 {
		t.Fatalf("parsed %d days, want 2", len(got.Itinerary.Days))
	}
	if got.Itinerary.Days[1].Activities[0].StayMinutes != 240 {
		t.Errorf("stay not clamped: %+v", got.Itinerary.Days[1].Activities[0])
	}
	if len(itinerary.ExtractDays(got.Markdown)) != 2 {
		t.Errorf("markdown projection missing days:\n%s", got.Markdown)
	}
	if len(got.Feasibility) != 2 {
		t.Errorf("feasibility report wrong: %+v", got.Feasibility)
	}
}

func TestGenerateStructuredRejectsInvalidPayload(t *testing.T) {
	chat := &stubChatClient{jsonReply: `{"days":[{"day":"one"}]}`}
	svc := NewPlannerService(&stubChatClient{}, chat)
	_, err := svc.GenerateStructured(context.Background(), testParams())
	if !errors.Is(err, utils.ErrUpstreamFailure) {
		t.Errorf("err = %v, want ErrUpstreamFailure", err)
	}
}

func TestRegenerateDay(t *testing.T) {
	doc := strings.Join([]string{
		"## Day 1 - 시내",
		"### 오전",
		"- **오사카성**",
		"",
		"## Day 2 - 근교",
		"### 오전",
		"- **나라 공원**",
	}, "\n") + "\n"

	chat := &stubChatClient{reply: "## Day 1 - 새 코스\n### 오전\n- **우메다 공중정원**\n### 점심\n- **오코노미야키집**"}
	svc := NewPlannerService(chat, chat)

	got, err := svc.RegenerateDay(context.Background(), request_models.RegenerateDayRequest{
		Markdown: doc, DayNum: 1, Params: testParams(),
	})
	if err != nil {
		t.Fatalf("RegenerateDay: %v", err)
	}
	if !strings.Contains(got.Markdown, "우메다 공중정원") {
		t.Errorf("day 1 not replaced:\n%s", got.Markdown)
	}
	if !strings.Contains(got.Markdown, "나라 공원") {
		t.Errorf("day 2 must be untouched:\n%s", got.Markdown)
	}
	if !strings.Contains(chat.lastPrompt, "Day 1") {
		t.Errorf("prompt missing day reference:\n%s", chat.lastPrompt)
	}
}

func TestRegenerateDayHeaderlessReply(t *testing.T) {
	doc := strings.Join([]string{
		"## Day 1 - 시내",
		"### 오전",
		"- **오사카성**",
		"",
		"## Day 2 - 근교",
		"### 오전",
		"- **나라 공원**",
	}, "\n") + "\n"

	chat := &stubChatClient{reply: "### 오전\n느긋한 아침 산책으로 시작합니다."}
	svc := NewPlannerService(chat, chat)

	got, err := svc.RegenerateDay(context.Background(), request_models.RegenerateDayRequest{
		Markdown: doc, DayNum: 2, Params: testParams(),
	})
	if err != nil {
		t.Fatalf("RegenerateDay: %v", err)
	}

	days := itinerary.ExtractDays(got.Markdown)
	if len(days) != 2 {
		t.Fatalf("days = %d, want 2:\n%s", len(days), got.Markdown)
	}
	if days[1].Title != "근교" {
		t.Errorf("day 2 title = %q, want 근교", days[1].Title)
	}
	if days[0].Raw != "## Day 1 - 시내\n### 오전\n- **오사카성**" {
		t.Errorf("day 1 changed:\n%s", days[0].Raw)
	}
	if n := strings.Count(got.Markdown, "느긋한 아침 산책"); n != 1 {
		t.Errorf("new body appears %d times, want 1:\n%s", n, got.Markdown)
	}
}

func TestRegenerateDayMissingDay(t *testing.T) {
	svc := NewPlannerService(&stubChatClient{}, &stubChatClient{})
	_, err := svc.RegenerateDay(context.Background(), request_models.RegenerateDayRequest{
		Markdown: "## Day 1 - 시내\n### 오전\n- **성**", DayNum: 2, Params: testParams(),
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestRegenerateSection(t *testing.T) {
	doc := "## Day 1 - 시내\n### 오전\n- **오사카성**\n### 점심\n- **라멘집**\n"
	chat := &stubChatClient{reply: "### 점심\n- **스시집** 예약 추천"}
	svc := NewPlannerService(chat, chat)

	got, err := svc.RegenerateSection(context.Background(), request_models.RegenerateSectionRequest{
		Markdown: doc, DayNum: 1, Section: "점심", Params: testParams(),
	})
	if err != nil {
		t.Fatalf("RegenerateSection: %v", err)
	}
	if !strings.Contains(got.Markdown, "스시집") || strings.Contains(got.Markdown, "라멘집") {
		t.Errorf("section not replaced:\n%s", got.Markdown)
	}
	if got.Section != "점심" {
		t.Errorf("Section = %q", got.Section)
	}
}

func TestRegenerateSectionUnknownLabel(t *testing.T) {
	svc := NewPlannerService(&stubChatClient{}, &stubChatClient{})
	_, err := svc.RegenerateSection(context.Background(), request_models.RegenerateSectionRequest{
		Markdown: "## Day 1 - 시내\n### 오전\n- **성**", DayNum: 1, Section: "새벽", Params: testParams(),
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}
