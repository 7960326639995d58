package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// OpenAIEngine is the hosted binding of the Engine contract. Sentence
// splitting and tokenization stay local; named-entity recognition is
// delegated to an OpenAI-compatible chat completion endpoint. Calls are
// rate limited.
type OpenAIEngine struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
	local   *RuleEngine
}

// OpenAIOptions configures the hosted engine
type OpenAIOptions struct {
	APIKey            string
	Model             string
	BaseURL           string
	RequestsPerSecond float64
	Burst             int
}

// NewOpenAIEngine constructs the hosted engine. The API key is required;
// everything else has defaults.
func NewOpenAIEngine(opts OpenAIOptions) (*OpenAIEngine, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("openai NLP engine: API key is required")
	}
	if opts.Model == "" {
		opts.Model = "gpt-4o-mini"
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 2
	}
	if opts.Burst <= 0 {
		opts.Burst = 2
	}

	clientConfig := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		clientConfig.BaseURL = opts.BaseURL
	}

	return &OpenAIEngine{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   opts.Model,
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.Burst),
		local:   NewRuleEngine(),
	}, nil
}

// Name returns the binding name
func (e *OpenAIEngine) Name() string { return "openai" }

// Sentences delegates to the local rule engine
func (e *OpenAIEngine) Sentences(ctx context.Context, text string) ([]Sentence, error) {
	return e.local.Sentences(ctx, text)
}

// Tokens delegates to the local rule engine
func (e *OpenAIEngine) Tokens(ctx context.Context, text string) ([]Token, error) {
	return e.local.Tokens(ctx, text)
}

const nerSystemPrompt = `You are a named entity recognizer for Czech construction documents.
Extract named entities from the user text. Respond with JSON only:
{"entities":[{"text":"<verbatim span from the text>","label":"<ORG|PER|LOC|MISC>"}]}
Return spans exactly as they appear in the text. Do not invent entities.`

type nerResponse struct {
	Entities []struct {
		Text  string `json:"text"`
		Label string `json:"label"`
	} `json:"entities"`
}

// Entities asks the hosted model for named entities and maps each returned
// span back to its first unclaimed occurrence in the text. Spans that do not
// occur verbatim in the text are dropped.
func (e *OpenAIEngine) Entities(ctx context.Context, text string) ([]NamedEntity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("NER rate limit: %w", err)
	}

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: nerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("NER request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("NER request: empty response")
	}

	var parsed nerResponse
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("NER response parse: %w", err)
	}

	var entities []NamedEntity
	searchFrom := make(map[string]int)
	for _, ent := range parsed.Entities {
		span := strings.TrimSpace(ent.Text)
		if span == "" {
			continue
		}
		idx := strings.Index(text[searchFrom[span]:], span)
		if idx < 0 {
			continue
		}
		start := searchFrom[span] + idx
		searchFrom[span] = start + len(span)
		entities = append(entities, NamedEntity{
			Text:  span,
			Label: normalizeLabel(ent.Label),
			Start: start,
			End:   start + len(span),
		})
	}
	return entities, nil
}

func normalizeLabel(label string) string {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "ORG", "ORGANIZATION":
		return "ORG"
	case "PER", "PERSON":
		return "PER"
	case "LOC", "GPE", "LOCATION":
		return "LOC"
	default:
		return "MISC"
	}
}
