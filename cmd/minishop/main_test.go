package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()

	t.Setenv("MINISHOP_ENV_FILE", filepath.Join(t.TempDir(), "none.env"))
	t.Setenv("MINISHOP_LOG_LEVEL", "")
	t.Setenv("MINISHOP_ADMIN_ADDR", "")
	t.Setenv("MINISHOP_METRICS_ENABLED", "")
	t.Setenv("MINISHOP_METRICS_TOKEN", "")
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

// TestRun_Session verifies a full session through the composition root exits 0.
func TestRun_Session(t *testing.T) {
	setEnv(t, nil)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), strings.NewReader("add\n1\nadd\n2\nbuy\nexit\n"), &stdout, &stderr)

	require.Equal(t, 0, code, "stderr=%s", stderr.String())
	assert.Contains(t, stdout.String(), "Purchased products for a total of $99.98\n")
	assert.True(t, strings.HasSuffix(stdout.String(), "Exiting the platform.\n"))
}

// TestRun_WithAdmin verifies the admin listener starts and stops with the session.
func TestRun_WithAdmin(t *testing.T) {
	setEnv(t, map[string]string{"MINISHOP_ADMIN_ADDR": "127.0.0.1:0"})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), strings.NewReader("view\nexit\n"), &stdout, &stderr)

	require.Equal(t, 0, code, "stderr=%s", stderr.String())
	assert.Contains(t, stdout.String(), "Cart{products=[]}\n")
}

// TestRun_BadConfig verifies configuration errors exit 2 before the session starts.
func TestRun_BadConfig(t *testing.T) {
	setEnv(t, map[string]string{"MINISHOP_LOG_LEVEL": "chatty"})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), strings.NewReader("exit\n"), &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "config:")
}

// TestRun_Canceled verifies a canceled parent context is a clean exit.
func TestRun_Canceled(t *testing.T) {
	setEnv(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run(ctx, strings.NewReader("add\n1\n"), &stdout, &stderr))
}
