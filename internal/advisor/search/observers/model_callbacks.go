package observers

import (
	"context"
	"strings"

	"github.com/agrosmart-advisor/server/internal/advisor/model"
	logx "github.com/agrosmart-advisor/server/pkg/logger"
	einocb "github.com/cloudwego/eino/callbacks"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	callbackHelper "github.com/cloudwego/eino/utils/callbacks"
)

// newModelHandler logs the question going in, the answer coming out and the
// token cost of the call.
func newModelHandler(modelName string) *callbackHelper.ModelCallbackHandler {
	return &callbackHelper.ModelCallbackHandler{
		OnStart: func(ctx context.Context, info *einocb.RunInfo, input *einomodel.CallbackInput) context.Context {
			ev := logx.Ctx(ctx).Debug().Str("model", modelName).Str("name", info.Name)
			if input != nil {
				ev = ev.Int("messages", len(input.Messages)).Str("user", lastUserContent(input.Messages))
			}
			ev.Msg("model call start")
			return ctx
		},
		OnEnd: func(ctx context.Context, info *einocb.RunInfo, output *einomodel.CallbackOutput) context.Context {
			if output == nil || output.Message == nil {
				return ctx
			}
			ev := logx.Ctx(ctx).Debug().
				Str("model", modelName).
				Int("answer_len", len(strings.TrimSpace(output.Message.Content)))

			if meta := output.Message.ResponseMeta; meta != nil && meta.Usage != nil {
				inC, outC, totalC := model.ComputeCost(meta.Usage, model.ResolvePricing(modelName))
				ev = ev.
					Int("prompt_tokens", meta.Usage.PromptTokens).
					Int("completion_tokens", meta.Usage.CompletionTokens).
					Int("total_tokens", meta.Usage.TotalTokens).
					Float64("input_cost_usd", inC).
					Float64("output_cost_usd", outC).
					Float64("total_cost_usd", totalC)
			}
			ev.Msg("model call end")
			return ctx
		},
		OnError: func(ctx context.Context, info *einocb.RunInfo, err error) context.Context {
			logx.Ctx(ctx).Error().Err(err).Str("model", modelName).Msg("model call failed")
			return ctx
		},
	}
}

func lastUserContent(msgs []*schema.Message) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		m := msgs[i]
		if m == nil {
			continue
		}
		if m.Role == schema.User {
			return strings.TrimSpace(m.Content)
		}
	}
	return ""
}
