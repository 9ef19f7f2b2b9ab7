package observability

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSink_CreatesLogDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	sink := NewSink(dir)
	defer sink.Close()

	sink.LogPerformanceMetric("extraction_ms", 12)

	_, err := os.Stat(filepath.Join(dir, jsonLogName))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, humanLogName))
	assert.NoError(t, err)
}

func TestLogError_WritesOneJSONLinePerEvent(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir)
	defer sink.Close()

	sink.LogError(errors.New("boom"), "extracting resume.pdf")
	sink.LogError(errors.New("bang"), "exporting result")

	data, err := os.ReadFile(filepath.Join(dir, jsonLogName))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "extracting resume.pdf", entry["context"])
	assert.Contains(t, entry, "time")
}

func TestLogPerformanceMetric_RecordsNameAndValue(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir)
	defer sink.Close()

	sink.LogPerformanceMetric("analyze_total_ms", 42.5)

	data, err := os.ReadFile(filepath.Join(dir, jsonLogName))
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "analyze_total_ms", entry["metric"])
	assert.Equal(t, 42.5, entry["value"])
}

func TestLogError_NilErrorIgnored(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir)
	defer sink.Close()

	sink.LogError(nil, "should not be written")

	data, err := os.ReadFile(filepath.Join(dir, jsonLogName))
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(string(data)))
}

func TestSink_HumanReadableLogWritten(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir)
	defer sink.Close()

	sink.LogError(errors.New("boom"), "stage")

	data, err := os.ReadFile(filepath.Join(dir, humanLogName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "boom")
	assert.Contains(t, string(data), "level=ERROR")
}

func TestSink_ZeroValueDiscards(t *testing.T) {
	var sink Sink

	// Must not panic or error; logging never blocks analysis.
	sink.LogError(errors.New("boom"), "context")
	sink.LogPerformanceMetric("metric", 1)
	sink.Close()
}

func TestNewSink_EmptyDirDiscards(t *testing.T) {
	sink := NewSink("")
	defer sink.Close()

	sink.LogPerformanceMetric("metric", 1)
}

func TestSink_ConcurrentAppends(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir)
	defer sink.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sink.LogPerformanceMetric("metric", 1)
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(filepath.Join(dir, jsonLogName))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 20)

	// Serialized appends mean every line is intact JSON.
	for _, line := range lines {
		var entry map[string]any
		assert.NoError(t, json.Unmarshal([]byte(line), &entry))
	}
}
