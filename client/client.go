// Package client is a Go consumer of the wallet API. It mirrors the
// mobile data hook: transactions and summary are fetched in parallel,
// a delete triggers a full reload, and every non-success or non-JSON
// response surfaces as a single recoverable error.
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
)

// Transaction is the wire shape of a ledger record. Amounts stay as
// json.Number so decimal values round-trip without precision loss.
type Transaction struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Title     string      `json:"title"`
	Amount    json.Number `json:"amount"`
	Category  string      `json:"category"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Summary is the derived aggregate for one user.
type Summary struct {
	Balance  json.Number `json:"balance"`
	Income   json.Number `json:"income"`
	Expenses json.Number `json:"expenses"`
}

// CreateRequest is the body for creating a transaction.
type CreateRequest struct {
	UserID   string      `json:"userId"`
	Title    string      `json:"title"`
	Amount   json.Number `json:"amount"`
	Category string      `json:"category"`
}

type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates an API client for the given base URL (e.g.
// "http://localhost:5001/api"). httpc may be nil.
func New(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
	}
}

// Transactions fetches the user's ledger, newest first.
func (c *Client) Transactions(ctx context.Context, userID string) ([]Transaction, error) {
	var out []Transaction
	if err := c.doJSON(ctx, http.MethodGet, "/transactions/"+userID, nil, &out); err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}
	return out, nil
}

// Summary fetches the user's balance/income/expenses aggregate.
func (c *Client) Summary(ctx context.Context, userID string) (Summary, error) {
	var out Summary
	if err := c.doJSON(ctx, http.MethodGet, "/transactions/summary/"+userID, nil, &out); err != nil {
		return Summary{}, fmt.Errorf("fetch summary: %w", err)
	}
	return out, nil
}

// CreateTransaction records a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, req CreateRequest) (Transaction, error) {
	var out Transaction
	if err := c.doJSON(ctx, http.MethodPost, "/transactions", req, &out); err != nil {
		return Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	return out, nil
}

// DeleteTransaction removes a transaction by id.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/transactions/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// doJSON issues a request and decodes the JSON response. Any non-2xx
// status or undecodable body becomes one error carrying the status and
// a body snippet, so callers have a single failure path to surface.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("request failed: %s %s: %s", resp.Status, req.URL.Path, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		// Non-JSON bodies usually mean a proxy or error page answered.
		return fmt.Errorf("decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}
