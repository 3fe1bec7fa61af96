package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolform/order-service/internal/domain/model"
)

func testOrder() *model.Order {
	return &model.Order{
		ID: "order-1",
		Items: []model.OrderItem{
			{LineID: "p01", Selected: true, Price: 500},
			{LineID: "p02", Selected: true, Price: 700, Option: "B"},
		},
		Guardian:   model.GuardianDetails{ParentName: "山田太郎", ChildName: "山田花子"},
		TotalPrice: 1200,
		CreatedAt:  time.Now(),
	}
}

// TestSheetClient_Append tests the request shape and verdict decoding.
func TestSheetClient_Append(t *testing.T) {
	t.Run("success verdict", func(t *testing.T) {
		var gotContentType string
		var gotBody []byte
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
			w.Write([]byte(`{"status":"success","message":"recorded"}`))
		}))
		defer srv.Close()

		c := NewSheetClient(srv.URL, time.Second)
		result, err := c.Append(context.Background(), testOrder())
		require.NoError(t, err)

		assert.True(t, result.OK)
		assert.Equal(t, "recorded", result.Message)

		// JSON payload with the endpoint's expected raw-body content type.
		assert.Equal(t, "text/plain;charset=utf-8", gotContentType)
		var sent model.Order
		require.NoError(t, json.Unmarshal(gotBody, &sent))
		assert.Equal(t, "order-1", sent.ID)
		assert.Len(t, sent.Items, 2)
		assert.Equal(t, 1200, sent.TotalPrice)
	})

	t.Run("application-level rejection is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"error","message":"quota exceeded"}`))
		}))
		defer srv.Close()

		c := NewSheetClient(srv.URL, time.Second)
		result, err := c.Append(context.Background(), testOrder())
		require.NoError(t, err)

		assert.False(t, result.OK)
		assert.Equal(t, "quota exceeded", result.Message)
	})

	t.Run("empty URL reports unconfigured", func(t *testing.T) {
		c := NewSheetClient("", time.Second)
		_, err := c.Append(context.Background(), testOrder())
		assert.ErrorIs(t, err, ErrSheetUnconfigured)
	})

	t.Run("unreachable endpoint reports transport error", func(t *testing.T) {
		c := NewSheetClient("http://127.0.0.1:1", 100*time.Millisecond)
		_, err := c.Append(context.Background(), testOrder())
		assert.ErrorContains(t, err, "send order to sheet")
	})

	t.Run("malformed response body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>definitely not json</html>`))
		}))
		defer srv.Close()

		c := NewSheetClient(srv.URL, time.Second)
		_, err := c.Append(context.Background(), testOrder())
		assert.ErrorContains(t, err, "decode sheet response")
	})
}
