package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"smarttrip/internal/itinerary"
	"smarttrip/internal/models/request_models"
	"smarttrip/internal/models/response_models"
	"smarttrip/pkg/utils"
)

const (
	generateMaxTokens   = 3000
	regenDayMaxTokens   = 1400
	regenSecMaxTokens   = 1200
	structuredMaxTokens = 4000

	promptContextLimit = 3000
)

type PlannerServiceInterface interface {
	GenerateItinerary(ctx context.Context, params request_models.TripParameters) (*response_models.GeneratedItinerary, error)
	GenerateStructured(ctx context.Context, params request_models.TripParameters) (*response_models.StructuredItinerary, error)
	RegenerateDay(ctx context.Context, req request_models.RegenerateDayRequest) (*response_models.RegeneratedDay, error)
	RegenerateSection(ctx context.Context, req request_models.RegenerateSectionRequest) (*response_models.RegeneratedDay, error)
}

type plannerService struct {
	chat       utils.ChatClient
	structured utils.ChatClient
}

// NewPlannerService wires the markdown path to chat and the structured path
// to structuredChat, which may be the same backend.
func NewPlannerService(chat, structuredChat utils.ChatClient) PlannerServiceInterface {
	return &plannerService{chat: chat, structured: structuredChat}
}

func styleList(styles []string) string {
	if len(styles) == 0 {
		return "일반 관광"
	}
	return strings.Join(styles, ", ")
}

func depthInstruction(nights int) string {
	switch {
	case nights <= 2:
		return "핵심 명소 위주로 구성하고, 이동 동선을 짧게 유지해 주세요."
	case nights <= 4:
		return "주요 관광지 외에 숨은 명소를 1~2개 포함해 주세요."
	default:
		return "근교 또는 당일치기 추천을 최소 1개 포함해 주세요."
	}
}

func paceInstruction(pace string) string {
	switch pace {
	case "여유":
		return "여유로운 이동과 휴식 시간을 충분히 포함."
	case "빡빡":
		return "핵심 명소를 더 촘촘히 구성하되 현실적인 이동 시간은 반드시 반영."
	default:
		return "관광과 휴식을 균형 있게 배치."
	}
}

func budgetInstruction(mode string) string {
	switch mode {
	case "가성비":
		return "무료/저비용 명소와 합리적 식당 비중을 높이세요."
	case "프리미엄":
		return "예약 가치가 있는 시그니처 장소/식당을 일부 포함하세요."
	default:
		return "중간 가격대 중심으로 구성하세요."
	}
}

func companionInstruction(companion string) string {
	if companion == "아이동반" {
		return "아이 동반 기준으로 이동/대기 부담이 적고 화장실/휴식 포인트를 고려."
	}
	return "동행 유형에 맞는 분위기와 활동 강도를 반영."
}

func tripFacts(p request_models.TripParameters) string {
	return fmt.Sprintf(`**목적지:** %s, %s
**여행 스타일:** %s
**예산 모드:** %s
**동행 유형:** %s
**일정 템포:** %s
**희망 활동 시간:** %d:00 ~ %d:00`,
		p.City, p.Country, styleList(p.TravelStyles),
		p.BudgetMode, p.CompanionType, p.Pace,
		p.DayStartHour, p.DayEndHour)
}

func buildGeneratePrompt(p request_models.TripParameters) string {
	return fmt.Sprintf(`당신은 전문 여행 플래너입니다. 날짜별 일정을 마크다운으로 작성해 주세요. **전체 응답은 반드시 한국어로 작성**해 주세요.

**목적지:** %s, %s
**일수:** %d일 (%d박)
**여행 스타일:** %s
**예산 모드:** %s
**동행 유형:** %s
**일정 템포:** %s
**희망 활동 시간:** %d:00 ~ %d:00

**작성 규칙:**
- 출력은 반드시 유효한 마크다운만. 서두나 요약 문장 없이 본문부터 시작.
- 각 날짜는 다음 섹션으로 구성: ## Day N - [테마/제목], 이후 ### 오전, ### 점심, ### 오후, ### 저녁, ### 밤(선택).
- 각 활동은: 장소명, 짧은 설명, 다음 이동지까지 **예상 이동 시간**을 포함.
- 각 섹션에는 **구체적인 장소 2~3곳**을 포함해 주세요. (점심/저녁은 1~2곳)
- 각 장소에는 **권장 체류 시간** 또는 **방문 팁(베스트 타임/예약 팁)** 중 하나를 포함해 주세요.
- %s
- 하루 일정은 위 활동 시간 범위 안에서 무리하지 않게 구성.
- %s
- %s
- %s
- 장소는 지리적으로 묶어 이동을 최소화.
- 식사, 관광, 자유 시간을 균형 있게 구성.
- 링크는 반드시 **실제 유효한 URL**만 사용하고, https:// 로 시작해야 합니다. 추측이 필요한 경우에는 Google Maps 검색 링크를 사용하세요. (예: https://www.google.com/maps/search/?api=1&query=장소명+도시)

형식 예시:
## Day 1 - 바다 산책과 미식
### 오전
- **해변 산책로** 아침 산책과 뷰 포인트. [Google 지도](https://maps.google.com/...) **이동 15분**
### 점심
- **현지 맛집** 대표 메뉴 소개. [공식 사이트](https://...)
### 오후
...
`,
		p.City, p.Country, p.Days(), p.Nights, styleList(p.TravelStyles),
		p.BudgetMode, p.CompanionType, p.Pace, p.DayStartHour, p.DayEndHour,
		depthInstruction(p.Nights),
		paceInstruction(p.Pace),
		budgetInstruction(p.BudgetMode),
		companionInstruction(p.CompanionType))
}

func clipContext(markdown string) string {
	if len(markdown) <= promptContextLimit {
		return markdown
	}
	cut := promptContextLimit
	for cut > 0 && !utf8.RuneStart(markdown[cut]) {
		cut--
	}
	return markdown[:cut]
}

func feasibilityReport(markdown string) []response_models.DayFeasibility {
	var out []response_models.DayFeasibility
	for _, day := range itinerary.ExtractDays(markdown) {
		a := itinerary.AnalyzeDay(day.Raw)
		out = append(out, response_models.DayFeasibility{
			Day:         day.DayNum,
			MoveMinutes: a.MoveMinutes,
			ItemCount:   a.ItemCount,
			Warnings:    a.Warnings,
		})
	}
	return out
}

func validateParams(p *request_models.TripParameters) error {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}
	return nil
}

func (s *plannerService) GenerateItinerary(ctx context.Context, params request_models.TripParameters) (*response_models.GeneratedItinerary, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}

	raw, err := s.chat.Complete(ctx,
		"여행 일정은 마크다운으로만 출력합니다. 서두나 결론 문장은 쓰지 않습니다. 한국어로 작성합니다.",
		buildGeneratePrompt(params), generateMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}

	markdown := sanitizeWholeDocument(raw)
	days := itinerary.ExtractDays(markdown)
	if len(days) == 0 {
		log.Printf("Generation returned no day headers for %s, %s", params.City, params.Country)
		return nil, fmt.Errorf("%w: empty itinerary", utils.ErrUpstreamFailure)
	}

	return &response_models.GeneratedItinerary{
		Markdown:    markdown,
		Days:        len(days),
		Feasibility: feasibilityReport(markdown),
	}, nil
}

// sanitizeWholeDocument runs every day through the section normalizer so
// downstream mutations always see canonical structure.
func sanitizeWholeDocument(markdown string) string {
	out := markdown
	for _, day := range itinerary.ExtractDays(markdown) {
		out = itinerary.ReplaceDayRaw(out, day.DayNum, itinerary.SanitizeDayRaw(day.Raw, day.DayNum))
	}
	return out
}

func buildStructuredPrompt(p request_models.TripParameters) string {
	return fmt.Sprintf(`당신은 전문 여행 플래너입니다. %d일(%d박) 일정을 아래 JSON 스키마에 **정확히** 맞춰 생성해 주세요. JSON 외의 텍스트는 출력하지 마세요.

%s

스키마:
{"days":[{"day":1,"theme":"string","activities":[{"name":"string","type":"string","stayMinutes":90,"moveMinutesToNext":15,"lat":0.0,"lng":0.0}]}]}

규칙:
- "days"는 정확히 %d개, day는 1부터 빈틈없이.
- 하루 활동 4~7개. 식사는 type에 "식당" 또는 "식사"를 사용.
- stayMinutes는 30~240, moveMinutesToNext는 0~180, 마지막 활동은 0.
- 이름과 theme는 한국어. 좌표를 모르면 lat/lng는 생략.
- 하루 총 시간이 %d:00~%d:00 범위를 넘지 않게 구성.`,
		p.Days(), p.Nights, tripFacts(p), p.Days(), p.DayStartHour, p.DayEndHour)
}

func (s *plannerService) GenerateStructured(ctx context.Context, params request_models.TripParameters) (*response_models.StructuredItinerary, error) {
	if err := validateParams(&params); err != nil {
		return nil, err
	}

	raw, err := s.structured.CompleteJSON(ctx,
		"여행 일정을 JSON으로만 출력합니다. 스키마 외 필드와 설명 문장은 금지합니다.",
		buildStructuredPrompt(params), structuredMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}

	parsed := itinerary.ParseItineraryResponse(raw)
	if parsed == nil || len(parsed.Days) == 0 {
		log.Printf("Structured generation returned an invalid payload for %s, %s", params.City, params.Country)
		return nil, fmt.Errorf("%w: invalid structured payload", utils.ErrUpstreamFailure)
	}

	markdown := itinerary.BuildMarkdownFromItinerary(parsed)
	result := &response_models.StructuredItinerary{
		Itinerary: parsed,
		Markdown:  markdown,
	}
	for _, day := range parsed.Days {
		a := itinerary.AnalyzeStructuredDay(day)
		result.Feasibility = append(result.Feasibility, response_models.DayFeasibility{
			Day:         day.Day,
			MoveMinutes: a.TotalMove,
			ItemCount:   len(day.Activities),
			Warnings:    a.Warnings,
		})
	}
	return result, nil
}

func buildRegenerateDayPrompt(p request_models.TripParameters, dayNum int, existing string) string {
	return fmt.Sprintf(`당신은 전문 여행 플래너입니다. 아래 일정 중 **Day %d** 부분만 새로 작성해 주세요.

%s

**기존 일정 (참고용 / Day %d만 새로 작성):**
`+"```"+`
%s
`+"```"+`

**요청:** Day %d의 일정만 마크다운으로 출력해 주세요. 반드시 "## Day %d - ..."로 시작하고, ### 오전, ### 점심, ### 오후, ### 저녁, ### 밤(선택) 형식을 지켜 주세요.
- 각 섹션에 **구체적인 장소 2~3곳**을 포함해 주세요. (점심/저녁은 1~2곳)
- 각 장소에는 **권장 체류 시간** 또는 **방문 팁**을 포함해 주세요.
- 활동 시간 범위를 크게 벗어나지 않도록 현실적으로 구성해 주세요.
- 링크는 반드시 **실제 유효한 URL**만 사용하고, https:// 로 시작해야 합니다. 추측이 필요한 경우에는 Google Maps 검색 링크를 사용하세요.
  (예: https://www.google.com/maps/search/?api=1&query=장소명+도시)
  장소에는 [텍스트](URL) 형태의 링크를 포함하고, 한국어로만 작성해 주세요.
다른 설명 없이 해당 Day 블록만 출력하세요.`,
		dayNum, tripFacts(p), dayNum, clipContext(existing), dayNum, dayNum)
}

func (s *plannerService) RegenerateDay(ctx context.Context, req request_models.RegenerateDayRequest) (*response_models.RegeneratedDay, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}
	if err := validateParams(&req.Params); err != nil {
		return nil, err
	}
	if req.DayNum > req.Params.Days() {
		return nil, fmt.Errorf("%w: dayNum beyond itinerary length", utils.ErrInvalidInput)
	}
	existing := itinerary.FindDayRange(req.Markdown, req.DayNum)
	if existing == nil {
		return nil, fmt.Errorf("%w: day %d not in document", utils.ErrInvalidInput, req.DayNum)
	}

	block, err := s.chat.Complete(ctx,
		"여행 일정은 해당 Day 블록만 마크다운으로 출력합니다. 서두나 결론은 쓰지 않고 한국어로 작성합니다.",
		buildRegenerateDayPrompt(req.Params, req.DayNum, req.Markdown), regenDayMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}
	if strings.TrimSpace(block) == "" {
		return nil, fmt.Errorf("%w: empty day block", utils.ErrUpstreamFailure)
	}

	// The model sometimes drops the "## Day N - ..." line; splicing such a
	// block would lose the day title and merge the day into its predecessor.
	// The stored header is authoritative either way.
	headerLine, _, _ := strings.Cut(existing.Raw, "\n")
	sanitized := itinerary.SanitizeDayRaw(headerLine+"\n"+itinerary.StripDayHeader(block), req.DayNum)
	updated := itinerary.ReplaceDayRaw(req.Markdown, req.DayNum, sanitized)
	return &response_models.RegeneratedDay{Markdown: updated, DayNum: req.DayNum}, nil
}

func buildRegenerateSectionPrompt(p request_models.TripParameters, dayNum int, section, dayMarkdown string) string {
	return fmt.Sprintf(`당신은 전문 여행 플래너입니다. 아래 일정 중 **Day %d**의 **### %s** 섹션만 새로 작성해 주세요.

%s

**기존 Day %d 일정 (참고용):**
`+"```"+`
%s
`+"```"+`

**요청:** 아래 규칙을 지켜 **### %s** 섹션만 마크다운으로 출력해 주세요.
- 반드시 "### %s"로 시작
- 각 섹션에 구체적인 장소 2~3곳 (점심/저녁 1~2곳)
- 각 장소에는 **권장 체류 시간** 또는 **방문 팁** 포함
- 이동 시간은 간단히 포함
- 링크는 반드시 https:// 로 시작하는 실제 URL만 사용
  (필요 시 https://www.google.com/maps/search/?api=1&query=장소명+도시)
다른 설명 없이 해당 섹션만 출력하세요.`,
		dayNum, section, tripFacts(p), dayNum, clipContext(dayMarkdown), section, section)
}

func (s *plannerService) RegenerateSection(ctx context.Context, req request_models.RegenerateSectionRequest) (*response_models.RegeneratedDay, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}
	if err := validateParams(&req.Params); err != nil {
		return nil, err
	}
	if !itinerary.IsAllowedSection(req.Section) {
		return nil, fmt.Errorf("%w: unknown section %q", utils.ErrInvalidInput, req.Section)
	}
	day := itinerary.FindDayRange(req.Markdown, req.DayNum)
	if day == nil {
		return nil, fmt.Errorf("%w: day %d not in document", utils.ErrInvalidInput, req.DayNum)
	}

	block, err := s.chat.Complete(ctx,
		"요청한 섹션만 마크다운으로 출력합니다. 서두나 결론은 쓰지 않고 한국어로 작성합니다.",
		buildRegenerateSectionPrompt(req.Params, req.DayNum, req.Section, day.Raw), regenSecMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}
	if strings.TrimSpace(block) == "" {
		return nil, fmt.Errorf("%w: empty section block", utils.ErrUpstreamFailure)
	}

	updated := itinerary.ReplaceSection(req.Markdown, req.DayNum, req.Section, block)
	return &response_models.RegeneratedDay{Markdown: updated, DayNum: req.DayNum, Section: req.Section}, nil
}
