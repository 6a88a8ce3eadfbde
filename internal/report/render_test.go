package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/coldscan/coldscan/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []types.ScanResult {
	return []types.ScanResult{
		{
			Path:     "/tmp/evil.apk",
			SHA256:   "0123456789abcdef0123456789abcdef",
			Severity: types.SevHigh,
			SignatureMatch: types.Metadata{
				"name": "EvilSample", "severity": "high",
			},
			Static: types.NewStaticFindings(),
		},
		{
			Path:     "/tmp/odd.zip",
			SHA256:   "fedcba9876543210fedcba9876543210",
			Severity: types.SevMed,
			Static: &types.StaticFindings{
				SuspiciousStrings: []string{"http://", "socket"},
			},
		},
		{
			Path:  "/tmp/gone.bin",
			Error: "open /tmp/gone.bin: no such file or directory",
		},
	}
}

func TestPrintJSONRoundtrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, sample()))

	var back []types.ScanResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, 3)
	assert.Equal(t, "/tmp/evil.apk", back[0].Path)
	assert.Equal(t, types.SevHigh, back[0].Severity)
	assert.Equal(t, "EvilSample", back[0].SignatureMatch["name"])
}

func TestPrintJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, []types.ScanResult{}))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sample(), PrintOptions{
		NoColor:      true,
		Duration:     1500 * time.Millisecond,
		FilesScanned: 3,
		CacheHits:    1,
	})
	out := buf.String()

	assert.Contains(t, out, "/tmp/evil.apk")
	assert.Contains(t, out, "signature: EvilSample")
	assert.Contains(t, out, "0123456789ab") // truncated digest
	assert.NotContains(t, out, "0123456789abcdef")
	assert.Contains(t, out, "2 suspicious string(s)")
	assert.Contains(t, out, "error: open /tmp/gone.bin")
	assert.Contains(t, out, "Files: 3 (high: 1, medium: 1, clean: 0, errors: 1)")
	assert.Contains(t, out, "Scan duration: 1.50s")
	assert.Contains(t, out, "Cache hits: 1")
	assert.NotContains(t, out, "\x1b[")
}

func TestPrintTableColor(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sample(), PrintOptions{})
	assert.Contains(t, buf.String(), "\x1b[31m")
}

func TestPrintTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, nil, PrintOptions{NoColor: true})
	assert.Contains(t, buf.String(), "No files scanned")
}
