// Package client talks to the SakhiAI chat endpoint on behalf of a session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"sakhiai/internal/models"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given server base URL. No timeout is set here;
// the transport default applies and a submitted request runs to completion.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
	}
}

// Send posts one message plus history and returns the reply text. A 503 from
// the server and any transport failure both come back as errors; the session
// turns them into the fixed apology bubble.
func (c *Client) Send(ctx context.Context, message string, conversationHistory []models.Turn) (string, error) {
	body, err := json.Marshal(models.ChatRequest{
		Message:             message,
		ConversationHistory: conversationHistory,
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var svcErr models.ServiceError
		if json.NewDecoder(resp.Body).Decode(&svcErr) == nil && svcErr.Error != "" {
			return "", fmt.Errorf("chat service unavailable: %s", svcErr.Error)
		}
		return "", fmt.Errorf("chat request returned status %d", resp.StatusCode)
	}

	var chatResp models.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}

	return chatResp.Reply, nil
}
