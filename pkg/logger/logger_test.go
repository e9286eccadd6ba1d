package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_LevelFiltering(t *testing.T) {
	Reset()
	var buf bytes.Buffer
	log := Init(Options{Level: "warn", Output: &buf})

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info line emitted at warn level: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn line missing: %s", out)
	}
}

func TestInit_OnlyFirstCallConfigures(t *testing.T) {
	Reset()
	var first, second bytes.Buffer
	Init(Options{Output: &first})
	log := Init(Options{Output: &second})

	log.Info().Msg("hello")
	if second.Len() != 0 {
		t.Error("second Init reconfigured the logger")
	}
	if first.Len() == 0 {
		t.Error("log line lost")
	}
}

func TestGet_BeforeInitPanics(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatal("Get before Init should panic")
		}
	}()
	Get()
}
