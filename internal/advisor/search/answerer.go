package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/agrosmart-advisor/server/internal/advisor/model"
	"github.com/agrosmart-advisor/server/internal/advisor/search/observers"
	"github.com/agrosmart-advisor/server/internal/advisor/search/prompts"
	logx "github.com/agrosmart-advisor/server/pkg/logger"
)

const (
	nodeAdvisorPrompt = "AdvisorPrompt"
	nodeAdvisorModel  = "AdvisorChatModel"
)

// ChainAnswerer renders the advisor prompt and sends it to a chat model in a
// single blocking call.
type ChainAnswerer struct {
	runnable  compose.Runnable[map[string]any, *schema.Message]
	modelName string
}

// NewChainAnswerer compiles prompt → chat model into one Eino chain.
func NewChainAnswerer(ctx context.Context, chatModel einomodel.BaseChatModel, modelName string) (*ChainAnswerer, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is nil")
	}

	runnable, err := compose.NewChain[map[string]any, *schema.Message]().
		AppendChatTemplate(prompts.NewAdvisorTemplate(), compose.WithNodeName(nodeAdvisorPrompt)).
		AppendChatModel(chatModel, compose.WithNodeName(nodeAdvisorModel)).
		Compile(ctx)
	if err != nil {
		logx.Error().Err(err).Msg("Error compiling advisor chain")
		return nil, fmt.Errorf("error compiling advisor chain: %w", err)
	}

	return &ChainAnswerer{runnable: runnable, modelName: modelName}, nil
}

// NewGeminiAnswerer builds a ChainAnswerer backed by a Gemini chat model.
func NewGeminiAnswerer(ctx context.Context, cfg model.AdvisorModelConfig) (*ChainAnswerer, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Model,
		Temperature: &cfg.Temperature,
		MaxTokens:   &cfg.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating advisor model")
		return nil, fmt.Errorf("error creating advisor model: %w", err)
	}

	return NewChainAnswerer(ctx, chatModel, cfg.Model)
}

func (a *ChainAnswerer) Answer(ctx context.Context, query string) (string, error) {
	out, err := a.runnable.Invoke(ctx, prompts.Vars(query),
		compose.WithCallbacks(observers.NewAllCallbacks(a.modelName)))
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", nil
	}
	return strings.TrimSpace(out.Content), nil
}

var _ Answerer = (*ChainAnswerer)(nil)
