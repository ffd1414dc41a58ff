package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soracell/sora/pkg/sora"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "sora-app")
	if err != nil {
		panic(err)
	}
	sora.SetLogPath(filepath.Join(dir, "test.log"))
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}
