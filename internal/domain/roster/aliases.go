package roster

// Canonical display names for tracked models, keyed to their lab. Scrapers
// map TO these names; they are what the published boards show.
var defaultRoster = map[string]string{
	// Anthropic
	"Claude Opus 4.6":   "Anthropic",
	"Claude Opus 4.5":   "Anthropic",
	"Claude Opus 4.1":   "Anthropic",
	"Claude Sonnet 4.6": "Anthropic",
	"Claude Sonnet 4.5": "Anthropic",
	"Claude 3 Haiku":    "Anthropic",
	// OpenAI
	"GPT-5.2":      "OpenAI",
	"GPT-5.1":      "OpenAI",
	"GPT-5":        "OpenAI",
	"GPT-5 mini":   "OpenAI",
	"GPT-4o":       "OpenAI",
	"GPT-4.5":      "OpenAI",
	"GPT-4":        "OpenAI",
	"O3":           "OpenAI",
	"o3-mini":      "OpenAI",
	"o4-mini":      "OpenAI",
	"o1-preview":   "OpenAI",
	"o1-mini":      "OpenAI",
	"gpt-oss-120b": "OpenAI",
	// Google / DeepMind
	"Gemini 3 Pro":   "Google DeepMind",
	"Gemini 3 Flash": "Google DeepMind",
	"Gemini 2.5 Pro": "Google DeepMind",
	"Gemini Flash 3": "Google DeepMind",
	"Gemma 3 12B":    "Google DeepMind",
	// xAI
	"Grok 4.20":   "xAI",
	"Grok 4.1":    "xAI",
	"Grok 3 Beta": "xAI",
	// DeepSeek
	"DeepSeek V3.2": "DeepSeek",
	"DeepSeek V3.1": "DeepSeek",
	"DeepSeek-V3":   "DeepSeek",
	"DeepSeek R1":   "DeepSeek",
	// Zhipu AI
	"GLM-5": "Zhipu AI",
	"GLM-4": "Zhipu AI",
	// Meta
	"Llama 4 Maverick":         "Meta",
	"Llama 3.1 Instruct Turbo": "Meta",
	// Mistral AI
	"Mistral Large 3": "Mistral AI",
	"Mistral Large":   "Mistral AI",
	"Devstral 2":      "Mistral AI",
	// Alibaba
	"Qwen3-Coder": "Alibaba",
	"Qwen3":       "Alibaba",
	"Qwen2.5":     "Alibaba",
	"qwq-32b":     "Alibaba",
	// MiniMax
	"MiniMax M2.5": "MiniMax",
	"MiniMax M2":   "MiniMax",
	"MiniMax M1":   "MiniMax",
	// Moonshot AI
	"Kimi K2.5":        "Moonshot AI",
	"Kimi K2 Instruct": "Moonshot AI",
	// Cohere
	"Cohere Command R+": "Cohere",
	// Others
	"intellect-3":      "PrimeIntellect",
	"Amazon Nova Lite": "Amazon",
}

// Explicit alias map. Keys are lowercase raw names as scraped; values are
// canonical roster names. Matching is by this table only, never by string
// distance: a missed alias creates a provisional entry for review instead of
// silently merging two models.
var defaultAliases = map[string]string{
	// Claude: missing "Claude " prefix (Rallies, ForecastBench)
	"opus 4.6":   "Claude Opus 4.6",
	"opus 4.5":   "Claude Opus 4.5",
	"opus 4.1":   "Claude Opus 4.1",
	"sonnet 4.6": "Claude Sonnet 4.6",
	"sonnet 4.5": "Claude Sonnet 4.5",
	"haiku 4.5":  "Claude 3 Haiku",
	// Claude: raw API model IDs
	"claude-opus-4-6":             "Claude Opus 4.6",
	"claude-opus-4-5":             "Claude Opus 4.5",
	"claude-sonnet-4-6":           "Claude Sonnet 4.6",
	"claude-sonnet-4-5":           "Claude Sonnet 4.5",
	"claude-haiku-4-5-20251001":   "Claude 3 Haiku",
	"claude-haiku-4.5-20251001":   "Claude 3 Haiku",
	"claude 4.5 haiku":            "Claude 3 Haiku",
	"claude haiku 4.5":            "Claude 3 Haiku",
	// OpenAI: spacing / dash variants
	"gpt 5.2":            "GPT-5.2",
	"gpt5.2":             "GPT-5.2",
	"gpt 5.1":            "GPT-5.1",
	"gpt5.1":             "GPT-5.1",
	"gpt 5 mini":         "GPT-5 mini",
	"gpt-5 mini":         "GPT-5 mini",
	"gpt5 mini":          "GPT-5 mini",
	"gpt 5.2 codex":      "GPT-5.2",
	"gpt-5.2 codex":      "GPT-5.2",
	"gpt-5-codex":        "GPT-5.2",
	"chatgpt-4o-latest":  "GPT-4o",
	"gpt-4o-2024-11-20":  "GPT-4o",
	"gpt-4.5-preview":    "GPT-4.5",
	"gpt-4 turbo":        "GPT-4",
	"gpt-4-turbo":        "GPT-4",
	"gpt-4.1 mini":       "GPT-4",
	"gpt oss 120b":       "gpt-oss-120b",
	// OpenAI: o-series
	"o3":                "O3",
	"openai o3":         "O3",
	"openai-o3":         "O3",
	"o3 mini":           "o3-mini",
	"openai o3-mini":    "o3-mini",
	"o4 mini":           "o4-mini",
	"openai o4-mini":    "o4-mini",
	"openai o1-mini":    "o1-mini",
	"openai o1-preview": "o1-preview",
	// Google Gemini
	"gemini-3-pro":     "Gemini 3 Pro",
	"gemini-3-flash":   "Gemini 3 Flash",
	"gemini-2.5-pro":   "Gemini 2.5 Pro",
	"gemini-flash-3":   "Gemini Flash 3",
	"gemini flash 3.0": "Gemini Flash 3",
	"gemini-3.0-flash": "Gemini Flash 3",
	// xAI Grok
	"grok-4":      "Grok 4.20",
	"grok 4":      "Grok 4.20",
	"grok4":       "Grok 4.20",
	"grok-4.20":   "Grok 4.20",
	"grok 4.1":    "Grok 4.1",
	"grok 3":      "Grok 3 Beta",
	"grok-3":      "Grok 3 Beta",
	"grok-3-beta": "Grok 3 Beta",
	// DeepSeek
	"deepseek-v3":      "DeepSeek-V3",
	"deepseek v3":      "DeepSeek-V3",
	"deepseek-r1":      "DeepSeek R1",
	"deepseek r1":      "DeepSeek R1",
	"deepseek-r1-zero": "DeepSeek R1",
	// Qwen / Alibaba
	"qwen3-max":                     "Qwen3",
	"qwen 3":                        "Qwen3",
	"qwen3-coder 480b/a35b instruct": "Qwen3-Coder",
	"qwq 32b":                       "qwq-32b",
	// MiniMax
	"minimax m1 40k": "MiniMax M1",
	"minimax-m1-40k": "MiniMax M1",
	// Kimi
	"kimi-k2-thinking": "Kimi K2.5",
	"kimi k2 thinking": "Kimi K2.5",
	"kimi-k2.5":        "Kimi K2.5",
	// Mistral
	"devstral":         "Devstral 2",
	"devstral (2512)":  "Devstral 2",
	"mistral-large":    "Mistral Large",
	"magistral medium": "Mistral Large",
	// Cohere
	"command r+": "Cohere Command R+",
	"command-r+": "Cohere Command R+",
	// Llama
	"llama 4 maverick instruct":  "Llama 4 Maverick",
	"llama-4-maverick":           "Llama 4 Maverick",
	"meta-llama/llama-4-maverick": "Llama 4 Maverick",
	// Misc scraped quirks
	"intellect 3":        "intellect-3",
	"nova-pro-v1:0":      "Amazon Nova Lite",
	"amazon/nova-pro-v1:0": "Amazon Nova Lite",
}
