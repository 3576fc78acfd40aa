// Package preflight verifies the environment before a stamping run: the
// external tool binaries must resolve and target directories must be
// writable. The doctor command surfaces these checks; nothing runs them
// implicitly.
package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"livepair/internal/config"
	"livepair/internal/deps"
)

// Result reports one environment check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckTools evaluates the external binaries the toolkit drives.
func CheckTools(cfg *config.Config) []deps.Status {
	requirements := []deps.Requirement{
		{
			Name:        "ExifTool",
			Command:     cfg.ExifToolBinary(),
			Description: "Required for image metadata stamping",
		},
		{
			Name:        "FFmpeg",
			Command:     cfg.FFmpegBinary(),
			Description: "Required for movie passthrough remuxing",
		},
		{
			Name:        "FFprobe",
			Command:     cfg.FFprobeBinary(),
			Description: "Required for movie metadata inspection",
		},
	}
	return deps.CheckBinaries(requirements)
}

// CheckDirectoryAccess verifies that the directory exists and is
// readable/writable, so stamping never discovers a permission problem
// halfway through a pair.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}
