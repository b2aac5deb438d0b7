package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/flat-earth/internal/sun"
	"github.com/Faultbox/flat-earth/pkg/geo"
	fmath "github.com/Faultbox/flat-earth/pkg/math"
)

func TestLogRotation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "flat-earth.log")

	// 1MB is the smallest size lumberjack rotates at.
	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
	}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	// Drag the sun back and forth; every move logs one debug line of
	// roughly 150 bytes.
	tr := sun.NewTracker(geo.LatLon{Lat: 47.7511, Lon: 120.7401}, Named("sun"))
	for i := 0; i < 20000; i++ {
		p := fmath.Vec2{X: 0.3, Y: 0.1}
		if i%2 == 1 {
			p = fmath.Vec2{X: -0.2, Y: 0.4}
		}
		if !tr.Update(sun.PointerSample{Position: p, Select: true}) {
			t.Fatalf("move %d was not applied", i)
		}
	}
	Sync()

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read log dir: %v", err)
	}

	var rotated []string
	for _, f := range files {
		name := f.Name()
		if name == "flat-earth.log" || !strings.HasPrefix(name, "flat-earth-") {
			continue
		}
		// lumberjack backups are named flat-earth-YYYY-MM-DDTHH-MM-SS.SSS.log
		if !strings.Contains(name, "-20") || !strings.HasSuffix(name, ".log") {
			t.Errorf("rotated file %s doesn't have expected timestamp format", name)
		}
		rotated = append(rotated, name)
	}
	if len(rotated) == 0 {
		t.Fatalf("no rotated files in %v", files)
	}

	// Older backups are pruned in the background, so read the newest one.
	content, err := os.ReadFile(filepath.Join(dir, rotated[len(rotated)-1]))
	if err != nil {
		t.Fatalf("failed to read rotated file: %v", err)
	}
	if !strings.Contains(string(content), "sun moved") || !strings.Contains(string(content), "midnight") {
		t.Errorf("rotated file does not hold sun events")
	}
}

func TestLogLevels(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"main loop error"}, []string{"screenshot failed", "snapshot written", "sun moved"}},
		{"warn", []string{"main loop error", "screenshot failed"}, []string{"snapshot written", "sun moved"}},
		{"info", []string{"main loop error", "screenshot failed", "snapshot written"}, []string{"sun moved"}},
		{"debug", []string{"main loop error", "screenshot failed", "snapshot written", "sun moved"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(dir, tt.level+".log")
			if err := InitWithFileConfig(tt.level, FileConfig{Path: logFile, MaxSizeMB: 10}, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Named("sun").Debug("sun moved", zap.Float64("lat", 10))
			Named("app").Info("snapshot written", zap.String("file", "out.png"))
			Named("app").Warn("screenshot failed", zap.String("dir", "screenshots"))
			Error("main loop error")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			out := string(content)

			for _, msg := range tt.expected {
				if !strings.Contains(out, msg) {
					t.Errorf("expected %q in log output", msg)
				}
			}
			for _, msg := range tt.excluded {
				if strings.Contains(out, msg) {
					t.Errorf("unexpected %q in log output for level %s", msg, tt.level)
				}
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if err := InitWithFileConfig("verbose", FileConfig{}, false); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNamed(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "named.log")
	if err := InitWithFileConfig("info", FileConfig{Path: logFile, MaxSizeMB: 1}, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Named("sampler").Info("mask ready")
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "sampler") || !strings.Contains(string(content), "mask ready") {
		t.Errorf("named logger output missing component: %q", content)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")

	if cfg.Path != "/tmp/test.log" {
		t.Errorf("expected path /tmp/test.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 50 {
		t.Errorf("expected MaxSizeMB 50, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 7 {
		t.Errorf("expected MaxAgeDays 7, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}
