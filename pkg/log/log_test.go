package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/YuminosukeSato/framegen/pkg/errors"
)

func TestTestLoggerLevels(t *testing.T) {
	logger, buffer := NewTestLogger(LevelInfo)

	logger.Debug("hidden")
	logger.Info("info message", FramesKey, 10)
	logger.Warn("warn message")
	logger.Error("error message", fmt.Errorf("disk full"), PathKey, "/tmp/x")

	if strings.Contains(buffer.String(), "hidden") {
		t.Error("debug record should be filtered at info level")
	}
	for _, msg := range []string{"info message", "warn message", "error message"} {
		if !logger.ContainsMessage(msg) {
			t.Errorf("%q not found in output", msg)
		}
	}
	if !logger.ContainsField(FramesKey, 10.0) {
		t.Error("expected frames field")
	}
	if !logger.ContainsField(ErrAttrKey, "disk full") {
		t.Error("leading error should be recorded under the error key")
	}
}

func TestTestLoggerWith(t *testing.T) {
	base, _ := NewTestLogger(LevelDebug)
	child := base.With(RunIDKey, "run-1", ComponentKey, "corpus")
	child.Info("written", OperationKey, OperationWrite)

	if !base.ContainsField(RunIDKey, "run-1") {
		t.Error("run id context not found")
	}
	if !base.ContainsField(OperationKey, OperationWrite) {
		t.Error("operation field not found")
	}

	entries, err := base.GetLogEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	base.Clear()
	if base.ContainsMessage("written") {
		t.Error("Clear should drop captured records")
	}
}

func TestToLogLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "WARNING", " error "} {
		if _, err := ToLogLevel(lvl); err != nil {
			t.Errorf("ToLogLevel(%q) unexpected error: %v", lvl, err)
		}
	}
	_, err := ToLogLevel("verbose")
	var vErr *errors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSetupLoggerJSONLayout(t *testing.T) {
	var buf bytes.Buffer
	logger, err := SetupLogger(&buf, "info")
	if err != nil {
		t.Fatal(err)
	}

	NewSlogLogger(logger).Error("write failed",
		errors.NewIOError("write", "/tmp/out.json", errors.New("no space")),
		PathKey, "/tmp/out.json",
	)

	var rec map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not a JSON line: %v (%q)", err, buf.String())
	}
	if rec["severity"] != "ERROR" {
		t.Errorf("severity = %v, want ERROR", rec["severity"])
	}
	if rec["message"] != "write failed" {
		t.Errorf("message = %v", rec["message"])
	}
	if _, ok := rec[StacktraceAttrKey]; !ok {
		t.Error("expected stacktrace attribute for a stack-carrying error")
	}

	if rec[ErrOpKey] != "write" || rec[ErrPathKey] != "/tmp/out.json" {
		t.Errorf("IOError fields not lifted: op=%v path=%v", rec[ErrOpKey], rec[ErrPathKey])
	}

	sl := NewSlogLogger(logger)
	if sl.Enabled(context.Background(), LevelDebug) {
		t.Error("debug should be disabled at info level")
	}
}

func TestErrFmtHandlerTypedErrorDetails(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want map[string]interface{}
		skip []string
	}{
		{
			name: "catalog entry with validation cause",
			err:  errors.NewCatalogError(3, errors.NewValidationError("chunk_id", "must be >= 1", 0)),
			want: map[string]interface{}{CatalogIndexKey: float64(3), ErrParamKey: "chunk_id"},
			skip: []string{ErrOpKey, ErrPathKey},
		},
		{
			name: "plain error",
			err:  fmt.Errorf("boom"),
			skip: []string{CatalogIndexKey, ErrOpKey, ErrPathKey, ErrParamKey, StacktraceAttrKey},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := SetupLogger(&buf, "info")
			if err != nil {
				t.Fatal(err)
			}
			logger.Error("failed", ErrAttr(tt.err))

			var rec map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
				t.Fatalf("output is not a JSON line: %v (%q)", err, buf.String())
			}
			for k, v := range tt.want {
				if rec[k] != v {
					t.Errorf("%s = %v, want %v", k, rec[k], v)
				}
			}
			for _, k := range tt.skip {
				if _, ok := rec[k]; ok {
					t.Errorf("unexpected attribute %s", k)
				}
			}
		})
	}
}

func TestNewWarnLogger(t *testing.T) {
	var buf bytes.Buffer
	errors.SetZerologWarnFunc(errors.NewZerologWarnFunc(NewWarnLogger(&buf, "info")))
	t.Cleanup(func() { errors.SetZerologWarnFunc(nil) })

	errors.Warn(errors.NewZeroFeaturesWarning(2, "demo.txt", 3))
	out := buf.String()
	if !strings.Contains(out, "WRN") || !strings.Contains(out, "all-zero feature vector") {
		t.Errorf("unexpected console output %q", out)
	}

	buf.Reset()
	errors.SetZerologWarnFunc(errors.NewZerologWarnFunc(NewWarnLogger(&buf, "error")))
	errors.Warn(errors.NewZeroFeaturesWarning(2, "demo.txt", 3))
	if buf.Len() != 0 {
		t.Errorf("warnings should be dropped at error level, got %q", buf.String())
	}
}
