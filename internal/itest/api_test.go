// If you are AI: This file contains integration tests for HTTP API endpoints.
// Tests verify API responses against files on disk.

package itest

import (
	"encoding/json"
	"net/http"
	"testing"

	"flvkit/internal/flvtest"
)

func TestAPIServer(t *testing.T) {
	binPath := BuildBinary(t)
	root := t.TempDir()
	s := flvtest.Build(t, flvtest.Options{MetaData: true})
	flvtest.WriteFile(t, root, "vod/sample.flv", s.Data)
	_, port := StartServer(t, binPath, root)
	base := "http://localhost:" + portToString(port)

	status, body := httpGet(t, base+"/api/server")
	if status != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", status)
	}
	var server struct {
		Version         string   `json:"version"`
		EnabledServices []string `json:"enabled_services"`
	}
	if err := json.Unmarshal(body, &server); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if server.Version == "" || len(server.EnabledServices) != 3 {
		t.Errorf("Unexpected server response: %s", body)
	}

	status, body = httpGet(t, base+"/api/files/vod/sample/seek?t=2500")
	if status != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", status, body)
	}
	var seek struct {
		Result struct {
			Found  bool   `json:"found"`
			Offset uint64 `json:"offset"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &seek); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !seek.Result.Found || seek.Result.Offset != s.KeyframeOffsets[2] {
		t.Errorf("Seek result %+v, want offset %d", seek.Result, s.KeyframeOffsets[2])
	}

	status, body = httpGet(t, base+"/api/files/vod/sample/metadata")
	if status != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", status)
	}
	var md struct {
		MetaData struct {
			Duration float64 `json:"duration"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(body, &md); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if md.MetaData.Duration != 3 {
		t.Errorf("Duration = %v, want 3", md.MetaData.Duration)
	}
}
