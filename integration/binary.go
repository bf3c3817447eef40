//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"testing"
)

type shop struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bytes.Buffer
}

func startShop(t *testing.T, ctx context.Context, env ...string) *shop {
	t.Helper()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, binPath)
	cmd.Env = append(cmd.Environ(), env...)
	cmd.Stdout = &stdout

	stdin, err := cmd.StdinPipe()
	if err != nil {
		t.Fatalf("stdin pipe: %v", err)
	}
	if err := cmd.Start(); err != nil {
		t.Fatalf("start %s: %v", binPath, err)
	}
	return &shop{cmd: cmd, stdin: stdin, stdout: &stdout}
}

func (s *shop) send(t *testing.T, lines ...string) {
	t.Helper()
	for _, l := range lines {
		if _, err := io.WriteString(s.stdin, l+"\n"); err != nil {
			t.Fatalf("write %q: %v", l, err)
		}
	}
}

func (s *shop) wait(t *testing.T) string {
	t.Helper()
	_ = s.stdin.Close()
	if err := s.cmd.Wait(); err != nil {
		t.Fatalf("minishop exited: %v", err)
	}
	return s.stdout.String()
}
