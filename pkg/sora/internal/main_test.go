package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "sora-internal")
	if err != nil {
		panic(err)
	}
	SetLogPath(filepath.Join(dir, "test.log"))
	code := m.Run()
	CloseLogger()
	os.RemoveAll(dir)
	os.Exit(code)
}
