// ABOUTME: Registers the three backend factories with the provider registry

package assist

import (
	"github.com/overhearhq/overhear/pkg/ai"
	"github.com/overhearhq/overhear/pkg/ai/provider/azure"
	"github.com/overhearhq/overhear/pkg/ai/provider/gemini"
	"github.com/overhearhq/overhear/pkg/ai/provider/openai"
)

func init() {
	ai.Register(ai.TypeAzureOpenAI, func(s ai.Settings) ai.Provider { return azure.New(s) })
	ai.Register(ai.TypeOpenAI, func(s ai.Settings) ai.Provider { return openai.New(s) })
	ai.Register(ai.TypeGoogleGemini, func(s ai.Settings) ai.Provider { return gemini.New(s) })
}
