package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"snake-arcade/game/types"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)
	defer log.SetOutput(io.Discard)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	log.Println("Test log message")

	info, err := os.Stat(filepath.Join(dir, logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestConfigFromFlags(t *testing.T) {
	cfg := configFromFlags(20, 150, 50, 5, 9)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default flags rejected: %v", err)
	}
	if cfg.InitialBody[0] != (types.Point{X: 10, Y: 10}) || cfg.InitialFood != (types.Point{X: 15, Y: 10}) {
		t.Errorf("start = %v food = %v", cfg.InitialBody, cfg.InitialFood)
	}
	if cfg.Speed != 150*time.Millisecond || cfg.MinSpeed != 50*time.Millisecond || cfg.SpeedStep != 5*time.Millisecond {
		t.Errorf("pace = %v %v %v", cfg.Speed, cfg.MinSpeed, cfg.SpeedStep)
	}
	if cfg.Seed != 9 {
		t.Errorf("seed = %d, want 9", cfg.Seed)
	}
}

func TestConfigFromFlags_ScalesStartToGrid(t *testing.T) {
	cfg := configFromFlags(10, 150, 50, 5, 1)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("10x10 config rejected: %v", err)
	}
	if cfg.InitialBody[0] != (types.Point{X: 5, Y: 5}) || cfg.InitialFood != (types.Point{X: 7, Y: 5}) {
		t.Errorf("start = %v food = %v", cfg.InitialBody, cfg.InitialFood)
	}
}

func TestConfigFromFlags_TimeSeed(t *testing.T) {
	if cfg := configFromFlags(20, 150, 50, 5, 0); cfg.Seed == 0 {
		t.Error("zero seed not replaced")
	}
}
