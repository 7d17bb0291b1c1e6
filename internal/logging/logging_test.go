package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(level logrus.Level) (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging(level)
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func TestSetupLogging_RenamesLevelKey(t *testing.T) {
	logger, buf := captureLogger(logrus.InfoLevel)
	logger.Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["loglevel"])
	assert.Equal(t, "hello", entry["msg"])
	assert.NotContains(t, entry, "level")
}

func TestLogData_FieldsAndContext(t *testing.T) {
	logger, buf := captureLogger(logrus.InfoLevel)
	logData := NewLogData(logger)
	logData.AddData("userCount", 3)
	logData.AddTiming("fetch")()

	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
	assert.Nil(t, GetLogData(context.Background()))
	assert.False(t, logData.IsLevelEnabled(logrus.DebugLevel))

	logData.Log().Info("done")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.EqualValues(t, 3, entry["userCount"])
	assert.Contains(t, entry, "fetch")
}

func TestLoggingWrapper_LogsHandlerError(t *testing.T) {
	logger, buf := captureLogger(logrus.InfoLevel)
	handler := LoggingWrapper("Test", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		assert.Same(t, logData, GetLogData(req.Context()))
		w.WriteHeader(http.StatusTeapot)
		return assert.AnError
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, buf.String(), "Handler.Test.Error")
	assert.NotContains(t, buf.String(), "Handler.Test.Complete")
}
