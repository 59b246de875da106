package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neegor/wanish"
	"github.com/neegor/wanish/internal/config"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Harbor Reopens After Storm - Example News</title></head>
<body>
<div class="article-body">
<h1>Harbor Reopens After Storm</h1>
<p>The harbor reopened on Monday morning after crews spent the weekend clearing debris, repairing the damaged pier, and inspecting every mooring along the waterfront.</p>
<p>Ferry service resumed at noon, with operators adding extra crossings to work through the backlog of passengers stranded by the three day closure.</p>
<p>Officials said the storm caused less damage than feared, crediting the new breakwater, and promised a full report on the repairs before the end of the month.</p>
</div>
</body>
</html>`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(samplePage), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandJSONOutput(t *testing.T) {
	out, err := runCommand(t, "--html", writeSample(t))
	require.NoError(t, err)

	var report wanish.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Harbor Reopens After Storm", report.Title)
	assert.NotEmpty(t, report.Summary)
}

func TestCommandTextOutput(t *testing.T) {
	out, err := runCommand(t, "--html", writeSample(t), "--format", "text", "--sentences", "1")
	require.NoError(t, err)

	assert.NotEmpty(t, out)
	assert.NotContains(t, out, "<")
}

func TestCommandHTMLOutput(t *testing.T) {
	out, err := runCommand(t, "--html", writeSample(t), "--format", "html")
	require.NoError(t, err)

	assert.Contains(t, out, "itemtype=\"http://schema.org/Article\"")
	assert.Contains(t, out, "Harbor Reopens After Storm")
}

func TestCommandArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no url and no html", nil},
		{"bad format", []string{"--html", "ignored.html", "--format", "xml"}},
		{"missing html file", []string{"--html", "/nonexistent/page.html"}},
		{"bad header", []string{"https://example.com", "--header", "no-equals-sign"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestParseHeaders(t *testing.T) {
	headers, err := parseHeaders([]string{"X-Auth=token-123", "Accept-Language = en "})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"X-Auth":          "token-123",
		"Accept-Language": "en",
	}, headers)

	empty, err := parseHeaders(nil)
	require.NoError(t, err)
	assert.Nil(t, empty)

	_, err = parseHeaders([]string{"justakey"})
	assert.Error(t, err)

	_, err = parseHeaders([]string{"=value"})
	assert.Error(t, err)
}

func TestApplyFlagsPrecedence(t *testing.T) {
	cfg := config.Default()
	cfg.SummarySentences = 7
	cfg.UserAgent = "from-config/1.0"

	applyFlags(&cfg, &rootFlags{sentences: 2, timeout: 10 * time.Second})

	assert.Equal(t, 2, cfg.SummarySentences, "explicit flag wins")
	assert.Equal(t, "from-config/1.0", cfg.UserAgent, "unset flag keeps config value")
	assert.Equal(t, 10*time.Second, cfg.Timeout.Std())
}
