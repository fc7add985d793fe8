package prompts

import (
	_ "embed"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

// QueryVar is the template variable holding the farmer's question.
const QueryVar = "query"

//go:embed template/advisor_prompt.txt
var advisorPrompt string

// NewAdvisorTemplate returns the chat template that wraps a search query for
// the advisor model. Rendering goes through Eino so prompt callbacks fire.
func NewAdvisorTemplate() prompt.ChatTemplate {
	return prompt.FromMessages(
		schema.GoTemplate,
		schema.UserMessage(strings.TrimRight(advisorPrompt, "\n")),
	)
}

// Vars builds the template variables for a query.
func Vars(query string) map[string]any {
	return map[string]any{QueryVar: query}
}
