package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// demoCommand returns a bare command with a captured output buffer.
func demoCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestRunDemo_Text(t *testing.T) {
	t.Setenv("INSUMO_CONFIG", "")

	opts := &RunOptions{
		RootOptions: &RootOptions{Format: "text"},
		Seed:        42,
		Top:         5,
		Logger:      zap.NewNop(),
	}
	cmd, buf := demoCommand()

	require.NoError(t, runDemo(opts, cmd))

	out := buf.String()
	assert.Contains(t, out, "Simulated 70 consumption records")
	assert.Contains(t, out, "Consumption queue (FIFO):")
	assert.Contains(t, out, "pending deductions: 1")
	assert.Contains(t, out, "Recent activity (LIFO):")
	assert.Contains(t, out, "undone:")
	assert.Contains(t, out, "Searches:")
	assert.Contains(t, out, "Top consumed items:")
	assert.Contains(t, out, "Earliest expiring items:")
}

func TestRunDemo_Deterministic(t *testing.T) {
	t.Setenv("INSUMO_CONFIG", "")

	render := func() string {
		opts := &RunOptions{
			RootOptions: &RootOptions{Format: "text"},
			Seed:        42,
			Top:         5,
			Logger:      zap.NewNop(),
		}
		cmd, buf := demoCommand()
		require.NoError(t, runDemo(opts, cmd))
		return buf.String()
	}

	assert.Equal(t, render(), render(), "same seed must produce identical output")
}

func TestRunDemo_JSON(t *testing.T) {
	t.Setenv("INSUMO_CONFIG", "")

	opts := &RunOptions{
		RootOptions: &RootOptions{Format: "json"},
		Seed:        42,
		Top:         3,
		Logger:      zap.NewNop(),
	}
	cmd, buf := demoCommand()

	require.NoError(t, runDemo(opts, cmd))

	var resp struct {
		Status string `json:"status"`
		RunID  string `json:"run_id"`
		Data   struct {
			Profile           string                   `json:"profile"`
			Records           int                      `json:"records"`
			Processed         []map[string]interface{} `json:"processed"`
			Pending           int                      `json:"pending"`
			SequentialMatches int                      `json:"sequential_matches"`
			TopConsumed       []map[string]interface{} `json:"top_consumed"`
			ExpiryOutlook     []map[string]interface{} `json:"expiry_outlook"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, "baseline", resp.Data.Profile)
	assert.Equal(t, 70, resp.Data.Records) // 10 days * 7 catalog items
	assert.Len(t, resp.Data.Processed, 2)
	assert.Equal(t, 1, resp.Data.Pending)
	assert.GreaterOrEqual(t, resp.Data.SequentialMatches, 0)
	assert.Len(t, resp.Data.TopConsumed, 3)
	assert.Len(t, resp.Data.ExpiryOutlook, 3)
}

func TestRunDemo_BadConfigPath(t *testing.T) {
	opts := &RunOptions{
		RootOptions: &RootOptions{Format: "text"},
		ConfigPath:  "/nonexistent/simulation.yaml",
		Logger:      zap.NewNop(),
	}
	cmd, _ := demoCommand()

	err := runDemo(opts, cmd)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunCommand_Flags(t *testing.T) {
	cmd := NewRunCommand(&RootOptions{Format: "text"})

	for _, flag := range []string{"config", "days", "seed", "top"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should be registered", flag)
	}
}
