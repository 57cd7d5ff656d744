package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStartCPUProfile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "cpu.pprof")
	stop, err := startCPUProfile(name)
	if err != nil {
		t.Fatal(err)
	}
	stop()
	stop()
	fi, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("profile is empty")
	}
}

func TestStartCPUProfileBadPath(t *testing.T) {
	if _, err := startCPUProfile(filepath.Join(t.TempDir(), "missing", "cpu.pprof")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
