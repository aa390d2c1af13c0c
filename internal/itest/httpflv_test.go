// If you are AI: This file contains integration tests for HTTP-FLV output.
// Tests verify that clients can download and seek files via HTTP-FLV.

package itest

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"flvkit/internal/core/protocol/flv"
	"flvkit/internal/flvtest"
)

// createFFmpegFLV encodes a short test pattern into an FLV file, skipping the test without ffmpeg.
func createFFmpegFLV(t *testing.T, path string) {
	t.Helper()
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not available")
	}
	createVideoCmd := exec.Command("ffmpeg",
		"-f", "lavfi",
		"-i", "testsrc=duration=3:size=320x240:rate=10",
		"-c:v", "flv1",
		"-g", "10",
		"-an",
		"-f", "flv",
		"-y",
		path,
	)
	createVideoCmd.Stderr = os.Stderr
	if err := createVideoCmd.Run(); err != nil {
		t.Skipf("Failed to create test video (ffmpeg may not support lavfi): %v", err)
	}
}

// httpGet fetches url and returns the status and body.
func httpGet(t *testing.T, url string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read %s: %v", url, err)
	}
	return resp.StatusCode, body
}

func TestHTTPFLVPlayback(t *testing.T) {
	binPath := BuildBinary(t)
	root := t.TempDir()
	s := flvtest.Build(t, flvtest.Options{MetaData: true})
	flvtest.WriteFile(t, root, "vod/sample.flv", s.Data)
	_, port := StartServer(t, binPath, root)
	base := "http://localhost:" + portToString(port)

	status, body := httpGet(t, base+"/vod/sample.flv")
	if status != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", status)
	}
	if !bytes.Equal(body, s.Data) {
		t.Errorf("Whole-file response differs: got %d bytes, want %d", len(body), len(s.Data))
	}

	// Seek: the response is a new stream starting at the keyframe at or before 2100 ms.
	status, body = httpGet(t, base+"/vod/sample.flv?start=2100")
	if status != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", status)
	}
	if !bytes.HasPrefix(body, []byte("FLV")) {
		t.Fatalf("Response does not start with FLV signature")
	}
	tail := s.Data[s.KeyframeOffsets[2]:]
	if !bytes.HasSuffix(body, tail) {
		t.Errorf("Seek response should end with the file from keyframe 2000")
	}
	if len(body) <= len(tail) {
		t.Errorf("Seek response should carry a preamble before the keyframe")
	}

	if status, _ := httpGet(t, base+"/vod/missing.flv"); status != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", status)
	}
}

func TestHTTPFLVFFmpegFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "ffmpeg.flv")
	createFFmpegFLV(t, path)
	binPath := BuildBinary(t)
	_, port := StartServer(t, binPath, root)

	status, body := httpGet(t, "http://localhost:"+portToString(port)+"/ffmpeg.flv")
	if status != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", status)
	}

	// The served bytes must decode tag by tag to a clean end of stream.
	r := flv.NewReader(bytes.NewReader(body))
	if _, err := r.ReadHeader(); err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	tags := 0
	for {
		if _, err := r.ReadPreTagSize(); err != nil {
			t.Fatalf("ReadPreTagSize after %d tags: %v", tags, err)
		}
		_, err := r.ReadTag()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadTag %d: %v", tags, err)
		}
		tags++
	}
	if tags == 0 {
		t.Error("No tags received")
	}
}
