package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

func TestBoardTable(t *testing.T) {
	b, err := t2048.NewBoard(2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.SetCells([]uint8{1, 0, 11, 3}); err != nil {
		t.Fatal(err)
	}

	out := boardTable(b)
	for _, want := range []string{"2", "2048", "8"} {
		if !strings.Contains(out, want) {
			t.Errorf("board table missing %q:\n%s", want, out)
		}
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		res  t2048.AutoplayResult
		want string
	}{
		{t2048.AutoplayResult{Won: true, GameOver: true}, "won"},
		{t2048.AutoplayResult{GameOver: true}, "game over"},
		{t2048.AutoplayResult{}, "stopped"},
	}
	for _, tt := range tests {
		if got := outcome(tt.res); got != tt.want {
			t.Errorf("outcome(%+v) = %q, want %q", tt.res, got, tt.want)
		}
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, config.LogConfig{Level: "WARN", Prefix: "test"})

	if l.GetLevel() != log.WarnLevel {
		t.Errorf("level = %s, want warn", l.GetLevel())
	}
	l.Info("hidden")
	l.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected log output: %q", buf.String())
	}
}

func TestAutoCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"auto", "2048-3x3", "--seed", "4", "--strategy", "random", "--max-moves", "10", "--config", writeConfig(t)})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("auto: %v", err)
	}
	if !strings.Contains(out.String(), "10 moves") && !strings.Contains(out.String(), "game over") {
		t.Errorf("unexpected auto output:\n%s", out.String())
	}
}

// writeConfig writes the embedded defaults to a temp file so the test does
// not depend on the user's config.
func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, config.DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
