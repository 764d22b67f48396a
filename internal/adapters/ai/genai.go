package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
	"github.com/sanghyeon0114/argue-with-ai/internal/logging"
	"github.com/sanghyeon0114/argue-with-ai/internal/ports"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// maxReplyTokens keeps generated turns to a single short sentence.
const maxReplyTokens = 50

// GeminiGenerator implements ports.TurnGenerator against the Gemini API.
// Responses are schema-constrained JSON so the score survives round trips.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// Verify interface compliance at compile time
var _ ports.TurnGenerator = (*GeminiGenerator)(nil)

// replySchema constrains generation to {"text": ..., "score": -3..3}
var replySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"text": {
			Type:        genai.TypeString,
			Description: "One short conversational sentence.",
		},
		"score": {
			Type:        genai.TypeInteger,
			Description: "Grade of the user's previous answer, -3 to 3.",
			Minimum:     genai.Ptr(float64(-3)),
			Maximum:     genai.Ptr(float64(3)),
		},
	},
	Required: []string{"text", "score"},
}

// reply is the wire form of one generated turn
type reply struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// NewGeminiGenerator creates a new GeminiGenerator
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// GenerateTurn implements ports.TurnGenerator.GenerateTurn
func (g *GeminiGenerator) GenerateTurn(ctx context.Context, prompt string, history []domain.ChatTurn) (*ports.TurnReply, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := genai.RoleModel
		if turn.Role == domain.SenderUser {
			role = genai.RoleUser
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, genai.Role(role)))
	}
	contents = append(contents, genai.NewContentFromText(prompt, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   replySchema,
		MaxOutputTokens:  maxReplyTokens,
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(int32(0)),
		},
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("Gemini generation failed: %w", err)
	}

	raw := strings.TrimSpace(result.Text())
	if raw == "" {
		return nil, fmt.Errorf("Gemini returned an empty candidate")
	}

	var r reply
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		logging.Logger.Warn("unparseable model reply", "raw", raw, "error", err)
		return nil, fmt.Errorf("failed to parse model reply: %w", err)
	}
	if r.Text == "" {
		return nil, fmt.Errorf("model reply missing text")
	}
	if r.Score < -3 || r.Score > 3 {
		return nil, fmt.Errorf("model score %d out of range", r.Score)
	}

	return &ports.TurnReply{Text: r.Text, Score: r.Score}, nil
}
