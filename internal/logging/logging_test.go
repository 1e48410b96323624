package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New("debug", "json", buf)

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("request_id", "rid-1").Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "rid-1", entry["request_id"])
}

func TestNewText(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New("warn", "text", buf)

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevelFallback(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, parseLevel("verbose"))
	assert.Equal(t, logrus.ErrorLevel, parseLevel("error"))
}
