package competitor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gpt "go-sentiment-snapshot/internal/gpt"
	gptutils "go-sentiment-snapshot/internal/gpt/utils"
)

const (
	// Product names scraped off listing pages can be arbitrarily long; cap
	// the prompt instead of letting the completion API reject it.
	maxPromptTokens = 2048

	instruction string = `You are a product analysis assistant. Given a product name and its manufacturer,
	return a JSON array of similar or competing brands/products.
	Respond with the JSON array only, no explanation and no markdown.
	Example: ["L'Oreal", "Vaseline", "CeraVe"]`
)

// Generator produces a competitor-name list for a product. It may fail or
// return an empty list; callers decide how to degrade.
type Generator interface {
	Generate(ctx context.Context, productName, manufacturer string) ([]string, error)
}

// GptGenerator asks the chat-completion service for competitor names.
type GptGenerator struct {
	gptFactory gpt.ClientFactory
	tokenizer  gptutils.Tokenizer
}

var _ Generator = GptGenerator{}

func NewGptGenerator(gptFactory gpt.ClientFactory, tokenizer gptutils.Tokenizer) GptGenerator {
	return GptGenerator{
		gptFactory: gptFactory,
		tokenizer:  tokenizer,
	}
}

func (g GptGenerator) Generate(ctx context.Context, productName, manufacturer string) ([]string, error) {

	prompt := fmt.Sprintf("%s by %s", productName, manufacturer)
	if tokens := g.tokenizer.CountTokens(instruction + prompt); tokens > maxPromptTokens {
		return nil, fmt.Errorf("generate competitors: prompt of %d tokens exceeds the %d cap", tokens, maxPromptTokens)
	}

	gptClient, err := g.gptFactory.Client()
	if err != nil {
		return nil, fmt.Errorf("generate competitors: %w", err)
	}

	gptClient.Instruct(instruction)
	response, err := gptClient.Prompt(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate competitors: %w", err)
	}

	return parseNameList(response)
}

// parseNameList accepts a JSON array payload, tolerating markdown fences and
// non-string members. Anything else is malformed.
func parseNameList(response string) ([]string, error) {

	payload := strings.TrimSpace(response)
	payload = strings.TrimPrefix(payload, "```json")
	payload = strings.TrimPrefix(payload, "```")
	payload = strings.TrimSuffix(payload, "```")
	payload = strings.TrimSpace(payload)

	var raw []interface{}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("generate competitors: response is not a JSON array: %w", err)
	}

	names := make([]string, 0, len(raw))
	for _, item := range raw {
		name, ok := item.(string)
		if !ok {
			continue
		}
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	return names, nil
}
