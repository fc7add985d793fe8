package observers

import (
	einocb "github.com/cloudwego/eino/callbacks"
	callbackHelper "github.com/cloudwego/eino/utils/callbacks"
)

// NewAllCallbacks aggregates the prompt and model observers into one callbacks.Handler.
// modelName selects the pricing used for the cost log line.
func NewAllCallbacks(modelName string) einocb.Handler {
	return callbackHelper.NewHandlerHelper().
		ChatModel(newModelHandler(modelName)).
		Prompt(newPromptHandler()).
		Handler()
}
