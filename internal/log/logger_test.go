package log

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lastJSONLine(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var last string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			last = s
		}
	}
	if last == "" {
		t.Fatal("no log lines found")
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(last), &m); err != nil {
		t.Fatalf("unmarshal json log: %v", err)
	}
	return m
}

func TestInitJSONConsole(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Output: &buf})
	t.Cleanup(func() { Init(Options{Output: &bytes.Buffer{}}) })

	l := WithOperation(WithComponent("sampler"), "eval")
	l.Debug("sampled", slog.Int("n", 3))

	m := lastJSONLine(t, buf.Bytes())
	want := map[string]any{
		"app":       "spline",
		"component": "sampler",
		"op":        "eval",
		"msg":       "sampled",
		"level":     "DEBUG",
		"n":         3.0,
	}
	for k, v := range want {
		if d := cmp.Diff(v, m[k]); d != "" {
			t.Errorf("attribute %q: %s", k, d)
		}
	}
}

func TestInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spline.log")
	var console bytes.Buffer
	Init(Options{Level: "info", File: path, Output: &console})
	t.Cleanup(func() { Init(Options{Output: &bytes.Buffer{}}) })

	L().Info("hello", slog.String("k", "v"))
	L().Debug("hidden")
	if err := Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	m := lastJSONLine(t, data)
	if m["msg"] != "hello" || m["k"] != "v" {
		t.Errorf("unexpected file record %v", m)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("debug record written at info level")
	}
	if !strings.Contains(console.String(), "msg=hello") {
		t.Errorf("console output %q lacks the record", console.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvLogSource, "yes")
	t.Setenv(EnvLogFile, "/tmp/x.log")
	want := Options{Level: "warn", Format: "json", AddSource: true, File: "/tmp/x.log"}
	if d := cmp.Diff(want, FromEnv()); d != "" {
		t.Error(d)
	}

	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogSource, "")
	o := FromEnv()
	if o.Level != "info" || o.AddSource {
		t.Errorf("defaults not applied: %+v", o)
	}
}
