package observers

import (
	"context"

	logx "github.com/agrosmart-advisor/server/pkg/logger"
	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/prompt"
	callbackHelper "github.com/cloudwego/eino/utils/callbacks"
)

func newPromptHandler() *callbackHelper.PromptCallbackHandler {
	return &callbackHelper.PromptCallbackHandler{
		OnStart: func(ctx context.Context, info *einocb.RunInfo, input *prompt.CallbackInput) context.Context {
			ev := logx.Ctx(ctx).Debug().Str("component", string(info.Component)).Str("name", info.Name)
			if input != nil {
				ev = ev.Interface("variables", input.Variables)
			}
			ev.Msg("prompt render start")
			return ctx
		},
		OnEnd: func(ctx context.Context, info *einocb.RunInfo, output *prompt.CallbackOutput) context.Context {
			ev := logx.Ctx(ctx).Debug().Str("name", info.Name)
			if output != nil && len(output.Result) > 0 && output.Result[0] != nil {
				ev = ev.Str("rendered", output.Result[0].Content)
			}
			ev.Msg("prompt render end")
			return ctx
		},
		OnError: func(ctx context.Context, info *einocb.RunInfo, err error) context.Context {
			logx.Ctx(ctx).Error().Err(err).Str("name", info.Name).Msg("prompt render failed")
			return ctx
		},
	}
}
