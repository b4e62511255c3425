// Package platform picks the script variant matching the host OS.
package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/kahiin/launcher/pkg/lib"
)

const (
	ScriptWindows = "windows.bat"
	ScriptArch    = "arch.sh"
	ScriptRHEL    = "centos-rhel.sh"
	ScriptDebian  = "ubuntu-debian.sh"
)

// OSReleasePath is the platform-release descriptor inspected on Unix.
const OSReleasePath = "/etc/os-release"

// Detector selects the script variant for a GOOS and os-release file.
type Detector struct {
	GOOS          string
	OSReleasePath string
}

// Host returns a Detector for the running system.
func Host() Detector {
	return Detector{GOOS: runtime.GOOS, OSReleasePath: OSReleasePath}
}

// ScriptName returns the variant file name, e.g. "arch.sh".
// A missing or unreadable os-release falls back to the Debian variant.
func (d Detector) ScriptName() string {
	if d.GOOS == "windows" {
		return ScriptWindows
	}

	data, err := os.ReadFile(d.OSReleasePath)
	if err != nil {
		return ScriptDebian
	}
	release := strings.ToLower(string(data))
	switch {
	case strings.Contains(release, "arch"), strings.Contains(release, "manjaro"):
		return ScriptArch
	case strings.Contains(release, "centos"), strings.Contains(release, "fedora"), strings.Contains(release, "rhel"):
		return ScriptRHEL
	default:
		return ScriptDebian
	}
}

// Script is a platform script living under a base directory, e.g.
// <kahiin-db>/initDB/arch.sh.
type Script struct {
	BaseDir string
	SubDir  string
	Name    string
	GOOS    string
}

// Script resolves the variant for subDir ("initDB", "dropDB") under baseDir.
func (d Detector) Script(baseDir, subDir string) Script {
	return Script{BaseDir: baseDir, SubDir: subDir, Name: d.ScriptName(), GOOS: d.GOOS}
}

// Path is the absolute location of the script.
func (s Script) Path() string {
	return filepath.Join(s.BaseDir, s.SubDir, s.Name)
}

// Prepare checks that the script exists and, on Unix, makes it executable.
// A missing script is reported as *lib.SpawnError.
func (s Script) Prepare() error {
	info, err := os.Stat(s.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &lib.SpawnError{Command: s.Name, Err: fmt.Errorf("script %s not found", s.Path())}
		}
		return &lib.SpawnError{Command: s.Name, Err: err}
	}
	if s.GOOS == "windows" {
		return nil
	}
	if err := os.Chmod(s.Path(), info.Mode().Perm()|0o755); err != nil {
		return &lib.SpawnError{Command: s.Name, Err: err}
	}
	return nil
}

// Command builds the invocation of the script with args, run from BaseDir.
// Unix uses "./initDB/arch.sh", Windows "initDB\windows.bat".
func (s Script) Command(args ...string) lib.Command {
	rel := filepath.Join(s.SubDir, s.Name)
	if s.GOOS != "windows" {
		rel = "./" + filepath.ToSlash(rel)
	}
	return lib.Command{Command: rel, Args: args, Dir: s.BaseDir}
}

// LocalScript returns the command for a script sitting directly in dir,
// e.g. "./start.sh" on Unix or "start.bat" on Windows.
func LocalScript(goos, dir, stem string) lib.Command {
	if goos == "windows" {
		return lib.Command{Command: stem + ".bat", Dir: dir}
	}
	return lib.Command{Command: "./" + stem + ".sh", Dir: dir}
}
