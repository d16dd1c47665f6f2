package planner_fx

import (
	"context"
	"os"

	"go.uber.org/fx"

	"smarttrip/internal/services"
	"smarttrip/pkg/utils"
)

var Module = fx.Provide(
	providePlannerService)

// providePlannerService wires the markdown path to OpenAI and, when a Gemini
// key is configured, the structured path to Gemini for its enforced JSON
// output. Without one, OpenAI's JSON mode serves both.
func providePlannerService() (services.PlannerServiceInterface, error) {
	chat := utils.NewOpenAIChatClient(os.Getenv("OPENAI_API_KEY"))

	var structured utils.ChatClient = chat
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		gemini, err := utils.NewGeminiChatClient(context.Background(), key, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			return nil, err
		}
		structured = gemini
	}

	return services.NewPlannerService(chat, structured), nil
}
