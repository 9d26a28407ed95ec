package effaudit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/tidwall/gjson"
)

// Oracle is the external classification service consulted when the
// local heuristics are not enough. Implementations must respect ctx
// cancellation; the classifier imposes a bounded timeout and converts
// any returned error into the unknown classification, so a failing
// oracle can never take the process down.
type Oracle interface {
	Classify(ctx context.Context, code string) (ClassificationResult, error)
}

const defaultAnthropicModel = "claude-sonnet-4-5-20250929"
const defaultOpenAIModel = "gpt-4o-mini"

// DefaultOracleTimeout bounds a single oracle call. Classification is
// the only operation in this package that touches the network.
const DefaultOracleTimeout = 30 * time.Second

const maxOracleCodeChars = 12000

func buildOraclePrompts(code string) (string, string) {
	var classLines strings.Builder
	for _, c := range KnownClasses {
		classLines.WriteString("- ")
		classLines.WriteString(string(c))
		classLines.WriteString("\n")
	}

	systemPrompt := fmt.Sprintf(`You classify code fragments into one canonical algorithmic problem class.
Choose exactly one class from:
%s
If none fit, use class "unknown".
Also:
- set confidence between 0 and 1
- give a one or two sentence reasoning
- list up to three alternative classes with their own confidences, best first.

Respond with JSON only (no markdown):
{"class": "comparison-sort", "confidence": 0.91, "reasoning": "...", "alternative_classes": [{"class": "binary-search", "confidence": 0.3}]}`, classLines.String())

	if len(code) > maxOracleCodeChars {
		code = code[:maxOracleCodeChars] + "\n...(truncated)"
	}
	userPrompt := "Classify this code fragment:\n\n" + code
	return systemPrompt, userPrompt
}

// --- Anthropic ---

// AnthropicOracle classifies via the Anthropic Messages API.
type AnthropicOracle struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

func (o *AnthropicOracle) Classify(ctx context.Context, code string) (ClassificationResult, error) {
	if strings.TrimSpace(o.APIKey) == "" {
		return ClassificationResult{}, fmt.Errorf("anthropic api key not configured")
	}
	model := o.Model
	if model == "" {
		model = defaultAnthropicModel
	}
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = DefaultOracleTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client := anthropic.NewClient(option.WithAPIKey(o.APIKey))
	systemPrompt, userPrompt := buildOraclePrompts(code)

	log.Printf("oracle classify provider=anthropic model=%s code_len=%d", model, len(code))
	message, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt, CacheControl: anthropic.NewCacheControlEphemeralParam()},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		log.Printf("oracle anthropic error: %v", err)
		return ClassificationResult{}, fmt.Errorf("Anthropic API error: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			log.Printf("oracle anthropic response size=%d tokens_in=%d tokens_out=%d",
				len(block.Text), message.Usage.InputTokens, message.Usage.OutputTokens)
			return parseOracleResponse(block.Text)
		}
	}
	return ClassificationResult{}, fmt.Errorf("no text content in Anthropic response")
}

// --- OpenAI ---

type openAIRequest struct {
	Model    string          `json:"model"`
	Messages []openAIMessage `json:"messages"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// OpenAIOracle classifies via the OpenAI chat completions API.
type OpenAIOracle struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

func (o *OpenAIOracle) Classify(ctx context.Context, code string) (ClassificationResult, error) {
	if strings.TrimSpace(o.APIKey) == "" {
		return ClassificationResult{}, fmt.Errorf("openai api key not configured")
	}
	model := o.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = DefaultOracleTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	systemPrompt, userPrompt := buildOraclePrompts(code)
	reqBody := openAIRequest{
		Model: model,
		Messages: []openAIMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return ClassificationResult{}, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return ClassificationResult{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.APIKey)

	log.Printf("oracle classify provider=openai model=%s code_len=%d", model, len(code))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("oracle openai error: %v", err)
		return ClassificationResult{}, fmt.Errorf("OpenAI API error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ClassificationResult{}, fmt.Errorf("reading response: %w", err)
	}

	var openAIResp openAIResponse
	if err := json.Unmarshal(respBody, &openAIResp); err != nil {
		return ClassificationResult{}, fmt.Errorf("parsing OpenAI response: %w", err)
	}
	if openAIResp.Error != nil {
		log.Printf("oracle openai api error: %s", openAIResp.Error.Message)
		return ClassificationResult{}, fmt.Errorf("OpenAI API error: %s", openAIResp.Error.Message)
	}
	if len(openAIResp.Choices) == 0 {
		return ClassificationResult{}, fmt.Errorf("no choices in OpenAI response")
	}
	return parseOracleResponse(openAIResp.Choices[0].Message.Content)
}

// --- response parsing ---

// parseOracleResponse locates the first well-formed JSON object in the
// oracle's reply and pulls the classification fields out of it. Models
// routinely wrap the document in markdown fences or surrounding prose,
// so the raw reply is never fed to a strict decoder directly.
func parseOracleResponse(responseText string) (ClassificationResult, error) {
	doc, ok := extractFirstJSONObject(responseText)
	if !ok {
		truncated := responseText
		if len(truncated) > 512 {
			truncated = truncated[:512] + fmt.Sprintf("... [truncated, total_length=%d]", len(responseText))
		}
		return ClassificationResult{}, fmt.Errorf("no JSON object in oracle response (truncated response: %s)", truncated)
	}

	result := ClassificationResult{
		Class:      ProblemClass(strings.TrimSpace(gjson.Get(doc, "class").String())),
		Confidence: gjson.Get(doc, "confidence").Float(),
		Reasoning:  strings.TrimSpace(gjson.Get(doc, "reasoning").String()),
	}
	for _, alt := range gjson.Get(doc, "alternative_classes").Array() {
		result.Alternatives = append(result.Alternatives, AlternativeClass{
			Class:      ProblemClass(strings.TrimSpace(alt.Get("class").String())),
			Confidence: alt.Get("confidence").Float(),
		})
	}
	if result.Class == "" {
		return ClassificationResult{}, fmt.Errorf("oracle response has no class field (doc: %s)", doc)
	}
	return result, nil
}

// extractFirstJSONObject returns the first balanced, valid JSON object
// embedded anywhere in s. Markdown fences are stripped first, the way
// fenced model output usually arrives.
func extractFirstJSONObject(s string) (string, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.IndexByte(s, '{')
	for start >= 0 {
		depth := 0
		inString := false
		escaped := false
		for i := start; i < len(s); i++ {
			ch := s[i]
			if escaped {
				escaped = false
				continue
			}
			switch ch {
			case '\\':
				escaped = inString
			case '"':
				inString = !inString
			case '{':
				if !inString {
					depth++
				}
			case '}':
				if !inString {
					depth--
					if depth == 0 {
						candidate := s[start : i+1]
						if gjson.Valid(candidate) {
							return candidate, true
						}
						i = len(s) // abandon this start position
					}
				}
			}
		}
		next := strings.IndexByte(s[start+1:], '{')
		if next < 0 {
			break
		}
		start = start + 1 + next
	}
	return "", false
}
