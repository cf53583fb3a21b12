package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestRunRound(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		require.NoError(t, runRound(seed, 400, 50), "seed %d", seed)
	}
	assert.NoError(t, runRound(1, 0, 1), "no ops")
}

func TestRunCheck(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := checkConfig{Rounds: 16, Size: 200, Span: 40, Workers: 3, Seed: 9}
	assert.NoError(t, runCheck(context.Background(), cfg))
}

func TestRunCheck_Canceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := checkConfig{Rounds: 1000, Size: 10, Span: 10, Workers: 2, Seed: 1}
	assert.ErrorIs(t, runCheck(ctx, cfg), context.Canceled)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "check.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadCheckConfig(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    checkConfig
		wantErr string
	}{
		{
			name: "partial",
			body: "rounds: 3\nworkers: 2\n",
			want: checkConfig{Rounds: 3, Size: 1000, Span: 200, Workers: 2, Seed: 1},
		},
		{
			name: "full",
			body: "rounds: 5\nsize: 10\nspan: 7\nworkers: 1\nseed: 99\n",
			want: checkConfig{Rounds: 5, Size: 10, Span: 7, Workers: 1, Seed: 99},
		},
		{
			name:    "invalid",
			body:    "span: 0\n",
			wantErr: "span must be positive",
		},
		{
			name:    "not yaml",
			body:    "rounds: [1",
			wantErr: "parsing config",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadCheckConfig(writeConfig(t, tt.body))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}

	_, err := loadCheckConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheckCmd(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := writeConfig(t, "rounds: 4\nsize: 1000\nspan: 20\nworkers: 2\n")

	var out bytes.Buffer
	cmd := newCheckCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "--size", "50"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, "ok: 4 rounds of 50 ops\n", out.String())
}

func TestCheckCmd_BadFlags(t *testing.T) {
	cmd := newCheckCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--workers", "0"})

	assert.EqualError(t, cmd.Execute(), "workers must be positive")
}
