package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"ponselku_backend/internals/configs"
)

// ErrGenerate membungkus semua kegagalan boundary AI: error provider/jaringan
// maupun JSON yang tidak valid. Caller memperlakukan keduanya sama
// (tampilkan state "coba lagi"), jadi satu sentinel cukup.
var ErrGenerate = errors.New("generate AI gagal")

// Client menerjemahkan request per fitur jadi satu panggilan LLM berformat JSON.
type Client struct {
	llm llms.Model
}

func NewClient() (*Client, error) {
	llm, err := openai.New(
		openai.WithToken(configs.AIAPIKey),
		openai.WithBaseURL(configs.AIBaseURL),
		openai.WithModel(configs.AIModel),
	)
	if err != nil {
		return nil, fmt.Errorf("init client AI: %w", err)
	}
	return &Client{llm: llm}, nil
}

func (c *Client) GenerateReview(ctx context.Context, phoneName string) (*ReviewPayload, error) {
	var payload ReviewPayload
	if err := c.generateJSON(ctx, buildReviewPrompt(phoneName), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) GenerateComparison(ctx context.Context, names []string) (*ComparisonPayload, error) {
	var payload ComparisonPayload
	if err := c.generateJSON(ctx, buildComparisonPrompt(names), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) GenerateMatch(ctx context.Context, prefs MatchPreferences) (*MatchPayload, error) {
	var payload MatchPayload
	if err := c.generateJSON(ctx, buildMatchPrompt(prefs), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) GenerateTopTier(ctx context.Context, category string) (*TopTierPayload, error) {
	var payload TopTierPayload
	if err := c.generateJSON(ctx, buildTopTierPrompt(category), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) GenerateDictionary(ctx context.Context) (*DictionaryPayload, error) {
	var payload DictionaryPayload
	if err := c.generateJSON(ctx, dictionaryPrompt, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Chat tidak memakai skema JSON: balasan asisten dipakai apa adanya.
func (c *Client) Chat(ctx context.Context, history []ChatMessage, message string) (string, error) {
	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, chatSystemPrompt),
	}
	for _, m := range history {
		role := llms.ChatMessageTypeHuman
		if m.Role == "assistant" {
			role = llms.ChatMessageTypeAI
		}
		content = append(content, llms.TextParts(role, m.Content))
	}
	content = append(content, llms.TextParts(llms.ChatMessageTypeHuman, message))

	resp, err := c.llm.GenerateContent(ctx, content, llms.WithTemperature(0.7))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerate, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: respons kosong", ErrGenerate)
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}

func (c *Client) generateJSON(ctx context.Context, prompt string, out interface{}) error {
	raw, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt,
		llms.WithTemperature(0.4), // temperatur rendah supaya format JSON stabil
		llms.WithJSONMode(),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGenerate, err)
	}

	clean := StripCodeFence(raw)
	if err := json.Unmarshal([]byte(clean), out); err != nil {
		return fmt.Errorf("%w: JSON tidak valid: %v", ErrGenerate, err)
	}
	return nil
}

// StripCodeFence membuang pembungkus blok kode markdown yang kadang ikut
// di respons model walau sudah diminta JSON murni.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
