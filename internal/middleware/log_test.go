package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogMiddleware(t *testing.T) {
	var buf bytes.Buffer

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(&buf),
		zapcore.DebugLevel,
	)
	logger := zap.New(core).Sugar()

	req := httptest.NewRequest(http.MethodPost, "/api/convert", nil)
	rr := httptest.NewRecorder()

	handler := LogMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("response"))
	}))

	handler.ServeHTTP(rr, req)

	logOutput := buf.String()
	if !strings.Contains(logOutput, `"method": "POST"`) {
		t.Errorf("log is missing the method: %s", logOutput)
	}
	if !strings.Contains(logOutput, `"status": 201`) {
		t.Errorf("log is missing the status: %s", logOutput)
	}
	if !strings.Contains(logOutput, `"path": "/api/convert"`) {
		t.Errorf("log is missing the path: %s", logOutput)
	}
	if !strings.Contains(logOutput, `"size": 8`) {
		t.Errorf("log is missing the response size: %s", logOutput)
	}
}
