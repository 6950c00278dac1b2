package check

import (
	"fmt"
	"strings"
	"testing"

	"github.com/backmassage/webpify/internal/config"
)

type mockLogger struct {
	lines []string
}

func (m *mockLogger) record(level, format string, args ...interface{}) {
	m.lines = append(m.lines, level+" "+fmt.Sprintf(format, args...))
}

func (m *mockLogger) Info(f string, a ...interface{})    { m.record("INFO", f, a...) }
func (m *mockLogger) Success(f string, a ...interface{}) { m.record("SUCCESS", f, a...) }
func (m *mockLogger) Warn(f string, a ...interface{})    { m.record("WARN", f, a...) }
func (m *mockLogger) Error(f string, a ...interface{})   { m.record("ERROR", f, a...) }
func (m *mockLogger) Debug(v bool, f string, a ...interface{}) {
	if v {
		m.record("DEBUG", f, a...)
	}
}

func (m *mockLogger) has(substr string) bool {
	for _, l := range m.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func TestRunCheck_AllPass(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputDir = t.TempDir()
	cfg.CheckOnly = true

	log := &mockLogger{}
	if !RunCheck(&cfg, log) {
		t.Fatalf("RunCheck failed: %v", log.lines)
	}
	if !log.has("WebP codec works") {
		t.Error("missing codec check result")
	}
	if !log.has("Logical cores") {
		t.Error("missing core count")
	}
	if !log.has("Write access") {
		t.Error("missing writability result")
	}
}

func TestRunCheck_UnwritableDir(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputDir = "/nonexistent/webpify-check"
	cfg.CheckOnly = true

	log := &mockLogger{}
	if RunCheck(&cfg, log) {
		t.Error("RunCheck passed with an unwritable target directory")
	}
	if !log.has("Cannot write to") {
		t.Error("missing write failure message")
	}
}
