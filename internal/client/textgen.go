package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/schoolform/order-service/internal/domain/model"
)

const (
	// DefaultTextGenEndpoint is the base URL of the generative language API.
	DefaultTextGenEndpoint = "https://generativelanguage.googleapis.com"
	// DefaultTextGenModel is the model used when none is configured.
	DefaultTextGenModel = "gemini-2.5-flash"
	// DefaultTextGenTemperature keeps confirmation wording close to deterministic.
	DefaultTextGenTemperature = 0.3
)

// TextGenConfig configures the text-generation client.
type TextGenConfig struct {
	APIKey      string
	Endpoint    string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// TextGenClient calls the generative language REST API to produce the
// confirmation message shown to the guardian after a successful order.
type TextGenClient struct {
	cfg        TextGenConfig
	httpClient *http.Client
}

// NewTextGenClient creates a text generation client.
// An empty APIKey is allowed; Generate then fails with ErrTextGenUnavailable
// and the caller is expected to synthesize a fallback message.
func NewTextGenClient(cfg TextGenConfig) *TextGenClient {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultTextGenEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultTextGenModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTextGenTemperature
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &TextGenClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// generateRequest is the REST payload for a generateContent call.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

// generateResponse is the subset of the REST response we consume.
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate produces a confirmation message for the order.
func (c *TextGenClient) Generate(ctx context.Context, order *model.Order) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrTextGenUnavailable
	}

	payload := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: BuildPrompt(order)}}},
		},
		GenerationConfig: generationConfig{Temperature: c.cfg.Temperature},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrTextGenFailed, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimSuffix(c.cfg.Endpoint, "/"), c.cfg.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrTextGenFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failure: the collaborator is unreachable, not broken.
		return "", fmt.Errorf("%w: %v", ErrTextGenUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxSheetResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrTextGenFailed, err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode response (status %d): %v", ErrTextGenFailed, resp.StatusCode, err)
	}

	if parsed.Error != nil {
		log.Error().
			Int("code", parsed.Error.Code).
			Str("message", parsed.Error.Message).
			Msg("Text generation API returned an error")
		return "", fmt.Errorf("%w: api error %d: %s", ErrTextGenFailed, parsed.Error.Code, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", ErrTextGenFailed, resp.StatusCode)
	}

	text := extractText(parsed)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrTextGenFailed)
	}
	return text, nil
}

func extractText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String())
}

// BuildPrompt renders the order into the Japanese instruction prompt sent to
// the text-generation model. Deterministic so it can be asserted in tests.
func BuildPrompt(order *model.Order) string {
	var items strings.Builder
	for i, item := range order.Items {
		if i > 0 {
			items.WriteString("\n")
		}
		line := item.LineID
		if item.Option != "" {
			line = fmt.Sprintf("%s (%s)", item.LineID, item.Option)
		}
		fmt.Fprintf(&items, "- 商品ID %s: %d円", line, item.Price)
	}

	return fmt.Sprintf(`
以下の学校用品注文を処理し、保護者向けの確認メッセージを生成してください。

## 注文詳細
- **保護者氏名:** %s
- **児童名:** %s
- **注文商品リスト:**
%s
- **合計金額:** %d円

## 指示
丁寧な日本語で、注文が正常に受け付けられたことを伝える、簡潔で分かりやすい確認メッセージを作成してください。
メッセージには、保護者の名前、児童の名前、合計金額、そして「ご注文ありがとうございました。」という感謝の言葉を必ず含めてください。
確認番号のようなものは不要です。シンプルにしてください。
`, order.Guardian.ParentName, order.Guardian.ChildName, items.String(), order.TotalPrice)
}
