package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sync"
)

// startCPUProfile backs the -cpuprofile flag: it samples the process into
// path until the returned stop function runs, for use with
// `go tool pprof quasicrystal <path>`. stop may be called more than once.
func startCPUProfile(path string) (stop func(), err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("starting profile: %w", err)
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			if err := f.Close(); err != nil {
				log.Printf("Closing profile %s: %v", path, err)
			}
		})
	}, nil
}
