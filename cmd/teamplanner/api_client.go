package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dom/teyvat-archive/internal/domain"
	"github.com/dom/teyvat-archive/internal/service"
)

// APIClient talks to a running archive server
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var msg messageResponse
		if json.Unmarshal(raw, &msg) == nil && msg.Message != "" {
			return fmt.Errorf("%s %s: %d %s", method, path, resp.StatusCode, msg.Message)
		}
		return fmt.Errorf("%s %s: %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *APIClient) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	var teams []*domain.Team
	if err := c.do(ctx, http.MethodGet, "/teams", nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *APIClient) CreateTeam(ctx context.Context, input service.CreateTeamInput) (*domain.Team, error) {
	var team domain.Team
	if err := c.do(ctx, http.MethodPost, "/teams", input, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *APIClient) DeleteTeam(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/teams/"+id, nil, nil)
}

func (c *APIClient) AnalyzeTeam(ctx context.Context, id string) (*service.TeamAnalysis, error) {
	var analysis service.TeamAnalysis
	if err := c.do(ctx, http.MethodGet, "/teams/"+id+"/analysis", nil, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}
