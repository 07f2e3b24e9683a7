package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpersToleratesNilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		Debug(nil, "d")
		Info(nil, "i")
		Warn(nil, "w")
		Error(nil, "e", errors.New("boom"))
	})
}

func TestHelpersRespectLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	Debug(logger, "hidden")
	Info(logger, "shown", FieldCount, 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"count":2`)
}

func TestErrorAttachesError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	Error(logger, "failed", errors.New("boom"), FieldPlayerID, 7)
	Error(logger, "no cause", nil)

	out := buf.String()
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"player_id":7`)
	assert.Contains(t, out, `"msg":"no cause"`)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte(`"error"`)))
}
