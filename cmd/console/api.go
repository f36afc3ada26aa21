package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jwebster45206/plot-engine/internal/handlers"
	"github.com/jwebster45206/plot-engine/pkg/analytics"
	"github.com/jwebster45206/plot-engine/pkg/plot"
)

// doGet performs a GET and unmarshals the JSON response into out.
func doGet(client *http.Client, url string, out any) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return fmt.Errorf("%s", errorResp.Error)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// doPost performs a POST with a JSON body and unmarshals the response.
func doPost(client *http.Client, url string, payload, out any) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return fmt.Errorf("%s", errorResp.Error)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func getStructure(client *http.Client, baseURL, projectID string) (*plot.PlotStructure, error) {
	var ps plot.PlotStructure
	if err := doGet(client, fmt.Sprintf("%s/v1/structures/%s", baseURL, projectID), &ps); err != nil {
		return nil, fmt.Errorf("failed to get plot structure: %w", err)
	}
	return &ps, nil
}

func generateStructure(client *http.Client, baseURL, projectID, template string, targetWordCount int) (*plot.PlotStructure, error) {
	var ps plot.PlotStructure
	req := handlers.GenerateRequest{Template: template, TargetWordCount: targetWordCount}
	if err := doPost(client, fmt.Sprintf("%s/v1/structures/%s/generate", baseURL, projectID), req, &ps); err != nil {
		return nil, fmt.Errorf("failed to generate beat sheet: %w", err)
	}
	return &ps, nil
}

func getProgress(client *http.Client, baseURL, projectID string) (*handlers.ProgressResponse, error) {
	var pr handlers.ProgressResponse
	if err := doGet(client, fmt.Sprintf("%s/v1/structures/%s/progress", baseURL, projectID), &pr); err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return &pr, nil
}

func getConflictCurves(client *http.Client, baseURL, projectID string) ([]analytics.ConflictCurve, error) {
	var curves []analytics.ConflictCurve
	if err := doGet(client, fmt.Sprintf("%s/v1/structures/%s/conflicts/curve", baseURL, projectID), &curves); err != nil {
		return nil, fmt.Errorf("failed to get conflict curves: %w", err)
	}
	return curves, nil
}

func getDashboard(client *http.Client, baseURL, projectID string) (*handlers.DashboardResponse, error) {
	var d handlers.DashboardResponse
	req := handlers.DashboardRequest{}
	if err := doPost(client, fmt.Sprintf("%s/v1/analytics/dashboard/%s", baseURL, projectID), req, &d); err != nil {
		return nil, fmt.Errorf("failed to get dashboard: %w", err)
	}
	return &d, nil
}
