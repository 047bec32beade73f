//go:build windows

package runner

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

const regExe = "reg.exe"

// Command resolves the registry tool to its absolute System32 path, so a
// writable directory earlier on PATH cannot shadow reg.exe. Falls back to
// the bare name if the system directory cannot be determined.
func Command() string {
	dir, err := windows.GetSystemDirectory()
	if err != nil {
		return regExe
	}
	return filepath.Join(dir, regExe)
}
