// If you are AI: This file contains integration tests that verify server startup, health checks, and shutdown.

package itest

import (
	"os/exec"
	"syscall"
	"testing"
	"time"
)

func TestServerStartupAndShutdown(t *testing.T) {
	binPath := BuildBinary(t)
	cmd, _ := StartServer(t, binPath, t.TempDir())

	// Send SIGINT
	if err := cmd.Process.Signal(syscall.SIGINT); err != nil {
		t.Fatalf("Failed to send SIGINT: %v", err)
	}

	// Wait for process to exit (should happen within 2 seconds)
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			if exitErr, ok := err.(*exec.ExitError); ok {
				t.Errorf("Process exited with unexpected code: %d", exitErr.ExitCode())
			} else {
				t.Errorf("Wait: %v", err)
			}
		}
	case <-time.After(2 * time.Second):
		// Process didn't exit within 2 seconds - this is a failure
		cmd.Process.Kill()
		t.Fatal("Server did not exit within 2 seconds after SIGINT")
	}
}
