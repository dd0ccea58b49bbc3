package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLevels(t *testing.T) {
	defer Setup("info", nil)

	cases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"verbose": logrus.InfoLevel,
	}
	for level, want := range cases {
		Setup(level, &bytes.Buffer{})
		assert.Equal(t, want, logrus.GetLevel(), level)
	}
}

func TestWithContextFields(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)
	defer Setup("info", nil)

	ctx := context.WithValue(context.Background(), UsernameKey, "ada")
	ctx = context.WithValue(ctx, RequestIDKey, "req-1")

	WithContext(ctx).WithField("sprint_id", "s-1").Info("replaced line items")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ada", entry["user"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "s-1", entry["sprint_id"])
	assert.Equal(t, "replaced line items", entry["msg"])
}

func TestWithContextUnknownUser(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)
	defer Setup("info", nil)

	WithContext(context.Background()).WithFields(map[string]interface{}{"a": 1}).Warn("x")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "unknown", entry["user"])
	assert.Equal(t, "warning", entry["level"])
}
