package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeDynamicConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func newTestWatcher(t *testing.T) (*ConfigWatcher, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dynamic.json")
	writeDynamicConfig(t, path, `{
		"features": {"enableGeneration": true},
		"limits": {"historyWindow": 10},
		"generation": {"temperature": 0.7, "maxTokens": 2000, "topP": 0.95, "topK": 40, "minEnhancementLength": 20},
		"metadata": {"version": "1.2.0"}
	}`)

	w, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(w.Stop)
	return w, path
}

func TestNewConfigWatcher_LoadsInitialConfig(t *testing.T) {
	w, _ := newTestWatcher(t)

	current := w.GetCurrent()
	assert.True(t, current.Features.EnableGeneration)
	assert.Equal(t, 10, current.Limits.HistoryWindow)
	assert.Equal(t, 0.7, current.Generation.Temperature)
	assert.Equal(t, 2000, current.Generation.MaxTokens)
	assert.Equal(t, "1.2.0", current.Metadata.Version)
}

func TestNewConfigWatcher_MissingFile(t *testing.T) {
	_, err := NewConfigWatcher(filepath.Join(t.TempDir(), "absent.json"), zap.NewNop())
	assert.Error(t, err)
}

func TestHandleConfigChange_NotifiesHandlers(t *testing.T) {
	w, path := newTestWatcher(t)

	got := make(chan *DynamicConfig, 1)
	w.OnChange(func(dc *DynamicConfig) { got <- dc })

	writeDynamicConfig(t, path, `{
		"features": {"enableGeneration": false},
		"limits": {"historyWindow": 4},
		"generation": {"temperature": 0.2, "maxTokens": 500}
	}`)
	w.handleConfigChange()

	select {
	case dc := <-got:
		assert.False(t, dc.Features.EnableGeneration)
		assert.Equal(t, 4, dc.Limits.HistoryWindow)
		assert.Equal(t, 0.2, dc.Generation.Temperature)
	case <-time.After(2 * time.Second):
		t.Fatal("change handler was not notified")
	}

	assert.Equal(t, 4, w.GetCurrent().Limits.HistoryWindow)
}

func TestHandleConfigChange_InvalidConfigKeepsCurrent(t *testing.T) {
	w, path := newTestWatcher(t)

	writeDynamicConfig(t, path, `{
		"features": {"enableGeneration": true},
		"limits": {"historyWindow": 0},
		"generation": {"temperature": 0.7, "maxTokens": 2000}
	}`)
	w.handleConfigChange()

	// The rejected reload leaves the last good config in place.
	assert.Equal(t, 10, w.GetCurrent().Limits.HistoryWindow)
}

func TestHandleConfigChange_MalformedJSONKeepsCurrent(t *testing.T) {
	w, path := newTestWatcher(t)

	writeDynamicConfig(t, path, `{not json`)
	w.handleConfigChange()

	assert.Equal(t, 10, w.GetCurrent().Limits.HistoryWindow)
}

func TestValidateConfig(t *testing.T) {
	w, _ := newTestWatcher(t)

	valid := func() *DynamicConfig {
		return &DynamicConfig{
			Limits:     Limits{HistoryWindow: 10},
			Generation: Generation{Temperature: 0.7, MaxTokens: 2000},
		}
	}

	assert.NoError(t, w.validateConfig(valid()))

	zeroWindow := valid()
	zeroWindow.Limits.HistoryWindow = 0
	assert.Error(t, w.validateConfig(zeroWindow))

	hotTemperature := valid()
	hotTemperature.Generation.Temperature = 2.5
	assert.Error(t, w.validateConfig(hotTemperature))

	zeroTokens := valid()
	zeroTokens.Generation.MaxTokens = 0
	assert.Error(t, w.validateConfig(zeroTokens))
}
