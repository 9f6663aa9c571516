package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLoggerLevels(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		wantDebug  bool
		wantInfo   bool
		wantWarn   bool
		wantError  bool
	}{
		{"debug passes everything", "debug", true, true, true, true},
		{"info filters debug", "info", false, true, true, true},
		{"warn filters info", "warn", false, false, true, true},
		{"error filters warn", "error", false, false, false, true},
		{"invalid defaults to info", "verbose", false, true, true, true},
		{"empty defaults to info", "", false, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewConsoleLogger(&buf, tt.configured)

			log.Debugf("debug message")
			log.Infof("info message")
			log.Warnf("warn message")
			log.Errorf("error message")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug message"))
			assert.Equal(t, tt.wantInfo, strings.Contains(out, "info message"))
			assert.Equal(t, tt.wantWarn, strings.Contains(out, "warn message"))
			assert.Equal(t, tt.wantError, strings.Contains(out, "error message"))
		})
	}
}

func TestConsoleLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "info")

	log.Infof("scanned %d files", 3)

	out := buf.String()
	assert.Regexp(t, `^\[\d{2}:\d{2}:\d{2}\] \[INFO\] scanned 3 files\n$`, out)
}

func TestConsoleLoggerNilWriter(t *testing.T) {
	log := NewConsoleLogger(nil, "info")

	// Must not panic
	log.Infof("into the void")
}

func TestConsoleLoggerConcurrent(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			log.Infof("message %d", n)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 20)
}
