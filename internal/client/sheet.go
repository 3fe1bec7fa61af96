package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/schoolform/order-service/internal/domain/model"
)

// sheetStatusSuccess is the status value the spreadsheet endpoint returns
// when the order row was written.
const sheetStatusSuccess = "success"

// maxSheetResponseBytes caps how much of the endpoint response is read.
const maxSheetResponseBytes = 1 << 20

// sheetResponse is the JSON envelope the spreadsheet endpoint answers with.
type sheetResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SheetClient posts submitted orders to a spreadsheet web-app endpoint.
//
// The order is serialized as JSON but sent with a text/plain content type,
// which is what the endpoint expects for its raw-body parsing.
type SheetClient struct {
	url        string
	httpClient *http.Client
}

// NewSheetClient creates a sheet client for the given endpoint URL.
// An empty URL is allowed; Append then fails with ErrSheetUnconfigured.
func NewSheetClient(url string, timeout time.Duration) *SheetClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &SheetClient{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Append sends the order to the spreadsheet endpoint and decodes its verdict.
func (c *SheetClient) Append(ctx context.Context, order *model.Order) (SheetResult, error) {
	if c.url == "" {
		return SheetResult{}, ErrSheetUnconfigured
	}

	body, err := json.Marshal(order)
	if err != nil {
		return SheetResult{}, fmt.Errorf("marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return SheetResult{}, fmt.Errorf("build sheet request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SheetResult{}, fmt.Errorf("send order to sheet: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxSheetResponseBytes))
	if err != nil {
		return SheetResult{}, fmt.Errorf("read sheet response: %w", err)
	}

	var parsed sheetResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return SheetResult{}, fmt.Errorf("decode sheet response (status %d): %w", resp.StatusCode, err)
	}

	if parsed.Status != sheetStatusSuccess {
		log.Error().
			Str("order_id", order.ID).
			Str("sheet_message", parsed.Message).
			Msg("Sheet endpoint rejected order")
		return SheetResult{OK: false, Message: parsed.Message}, nil
	}

	return SheetResult{OK: true, Message: parsed.Message}, nil
}
