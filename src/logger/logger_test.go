package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitWritesLogFile(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	defer func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	}()

	p := filepath.Join(t.TempDir(), "run.log")
	closeLog, err := Init("warn", p)
	if err != nil {
		t.Fatal(err)
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("Expected warn level, got %s", zerolog.GlobalLevel())
	}
	log.Info().Msg("hidden")
	log.Warn().Int("floor", 7).Msg("visible")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Errorf("Info message should be filtered: %q", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "floor=7") {
		t.Errorf("Missing warn message in %q", out)
	}
}

func TestInitRejectsBadLevel(t *testing.T) {
	if _, err := Init("loud", ""); err == nil {
		t.Error("Expected an error for an unknown level")
	}
}
