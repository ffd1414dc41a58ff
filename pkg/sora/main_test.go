package sora

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soracell/sora/pkg/sora/internal"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "sora")
	if err != nil {
		panic(err)
	}
	SetLogPath(filepath.Join(dir, "test.log"))
	code := m.Run()
	internal.CloseLogger()
	os.RemoveAll(dir)
	os.Exit(code)
}
