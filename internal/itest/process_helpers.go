// If you are AI: This file provides helper functions for building and running the flvkit binary in tests.

package itest

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"syscall"
	"testing"
	"time"
)

// BuildBinary builds cmd/flvkit into a temporary directory and returns its path.
func BuildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
	binPath := filepath.Join(t.TempDir(), "flvkit")
	buildCmd := exec.Command("go", "build", "-o", binPath, "../../cmd/flvkit")
	buildCmd.Stderr = os.Stderr
	if err := buildCmd.Run(); err != nil {
		t.Fatalf("Failed to build binary: %v", err)
	}
	return binPath
}

// StartServer runs "flvkit serve" over root on a free port and waits for the health endpoint.
// The process receives SIGINT when the test ends.
func StartServer(t *testing.T, binPath, root string) (*exec.Cmd, int) {
	t.Helper()
	port := findFreePort(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := fmt.Sprintf("server:\n  http_port: %d\n  root_dir: %q\nlog:\n  level: debug\n", port, root)
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cmd := exec.Command(binPath, "serve", "-config", configPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	t.Cleanup(func() {
		if cmd.ProcessState == nil {
			cmd.Process.Signal(syscall.SIGINT)
			cmd.Wait()
		}
	})

	if err := WaitForHealth(port, 5*time.Second); err != nil {
		t.Fatalf("Health endpoint not available: %v", err)
	}
	return cmd, port
}

// WaitForHealth waits for the health endpoint to become available.
// Returns an error if the endpoint is not available within the timeout.
func WaitForHealth(port int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	url := fmt.Sprintf("http://localhost:%d/healthz", port)

	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("health endpoint not available after %v", timeout)
}

// findFreePort asks the kernel for an unused TCP port.
func findFreePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("Failed to find free port: %v", err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// portToString formats a port for URLs.
func portToString(port int) string {
	return strconv.Itoa(port)
}
