package backend

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/bedrock"
	"github.com/anthropics/anthropic-sdk-go/option"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/configo-dev/configo/internal/config"
	"github.com/configo-dev/configo/pkg/models"
)

// LLMClient wraps the Anthropic SDK client used by the LLM-backed
// capabilities.
type LLMClient struct {
	inner anthropic.Client
	model anthropic.Model
}

// NewLLMClient creates a client from the Anthropic config section.
// It returns an error when neither an API key nor Bedrock is configured,
// which the bridge treats as "bind fallbacks".
func NewLLMClient(cfg config.AnthropicConfig) (*LLMClient, error) {
	var opts []option.RequestOption

	if cfg.UseAWSBedrock {
		ctx := context.Background()

		var loadOpts []func(*awsconfig.LoadOptions) error
		if cfg.AWSRegion != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.AWSRegion))
		}
		if cfg.AWSProfile != "" {
			loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(cfg.AWSProfile))
		}

		opts = append(opts, bedrock.WithLoadDefaultConfig(ctx, loadOpts...))
	} else {
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("no Anthropic API key configured")
		}
		opts = append(opts, option.WithAPIKey(apiKey))
	}

	model := anthropic.Model(cfg.Model)
	if model == "" {
		model = anthropic.ModelClaudeSonnet4_20250514
	}

	return &LLMClient{
		inner: anthropic.NewClient(opts...),
		model: model,
	}, nil
}

// complete sends a single-turn request and returns the text output.
func (c *LLMClient) complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.inner.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 4096,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("API call failed: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			text += variant.Text
		}
	}
	return text, nil
}

const suggestSystemPrompt = `You are CONFIGO, a development environment setup assistant.
Given a description of a development environment, respond with JSON only:
{"tools": [{"name": "...", "description": "...", "install_command": "...",
"check_command": "...", "dependencies": ["..."]}],
"portals": [{"name": "...", "display_name": "...", "url": "...", "description": "..."}]}
Install and check commands must be single shell command lines for the user's
platform. Order tools so prerequisites come first.`

// LLMSuggester implements StackSuggester with a Claude model.
type LLMSuggester struct {
	client *LLMClient
}

func (s *LLMSuggester) SuggestStack(ctx context.Context, description string) (*models.Suggestion, error) {
	text, err := s.client.complete(ctx, suggestSystemPrompt, description)
	if err != nil {
		return nil, fmt.Errorf("suggest stack: %w", err)
	}

	suggestion, err := ParseSuggestion(text)
	if err != nil {
		return nil, fmt.Errorf("suggest stack: %w", err)
	}
	return suggestion, nil
}

func (s *LLMSuggester) Available() bool { return true }

const planSystemPrompt = `You are CONFIGO, a development environment setup assistant.
Given a description of a development environment, respond with JSON only:
{"tools": [{"name": "...", "description": "...", "install_command": "...",
"check_command": "...", "dependencies": ["..."]}], "estimated_time": "..."}
Install and check commands must be single shell command lines for the user's
platform. Order tools so prerequisites come first.`

// LLMPlanner implements PlanGenerator with a Claude model.
type LLMPlanner struct {
	client *LLMClient
}

func (p *LLMPlanner) GeneratePlan(ctx context.Context, description string) (*models.Plan, error) {
	text, err := p.client.complete(ctx, planSystemPrompt, description)
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	plan, err := ParsePlan(text)
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}
	plan.Description = description
	plan.GeneratedAt = time.Now()
	return plan, nil
}

func (p *LLMPlanner) Available() bool { return true }

const chatSystemPrompt = `You are CONFIGO, a development environment setup assistant.
Answer questions about installing and configuring development tools concisely.`

// LLMChat implements ChatAgent with a Claude model.
type LLMChat struct {
	client *LLMClient
}

func (c *LLMChat) Chat(ctx context.Context, message string) (string, error) {
	reply, err := c.client.complete(ctx, chatSystemPrompt, message)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	return reply, nil
}

func (c *LLMChat) Available() bool { return true }
