package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kahiin/launcher/pkg/lib"
)

func writeRelease(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os-release")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write os-release: %v", err)
	}
	return path
}

func TestScriptName(t *testing.T) {
	cases := []struct {
		release string
		want    string
	}{
		{"NAME=\"Arch Linux\"\nID=arch\n", ScriptArch},
		{"NAME=\"Manjaro Linux\"\nID=manjaro\n", ScriptArch},
		{"NAME=\"CentOS Stream\"\nID=\"centos\"\n", ScriptRHEL},
		{"NAME=\"Fedora Linux\"\nID=fedora\n", ScriptRHEL},
		{"NAME=\"Red Hat Enterprise Linux\"\nID=\"rhel\"\n", ScriptRHEL},
		{"NAME=\"Ubuntu\"\nID=ubuntu\n", ScriptDebian},
		{"NAME=\"Alpine Linux\"\nID=alpine\n", ScriptDebian},
	}
	for _, c := range cases {
		d := Detector{GOOS: "linux", OSReleasePath: writeRelease(t, c.release)}
		if got := d.ScriptName(); got != c.want {
			t.Fatalf("release %q: expected %s, got %s", c.release, c.want, got)
		}
	}
}

func TestScriptName_MissingRelease(t *testing.T) {
	d := Detector{GOOS: "linux", OSReleasePath: filepath.Join(t.TempDir(), "missing")}
	if got := d.ScriptName(); got != ScriptDebian {
		t.Fatalf("expected fallback %s, got %s", ScriptDebian, got)
	}
}

func TestScriptName_Windows(t *testing.T) {
	d := Detector{GOOS: "windows", OSReleasePath: writeRelease(t, "ID=arch")}
	if got := d.ScriptName(); got != ScriptWindows {
		t.Fatalf("expected %s, got %s", ScriptWindows, got)
	}
}

func TestScript_CommandUnix(t *testing.T) {
	d := Detector{GOOS: "linux", OSReleasePath: writeRelease(t, "ID=arch")}
	s := d.Script("/opt/kahiin-db", "initDB")

	cmd := s.Command("db", "user")
	if cmd.Command != "./initDB/arch.sh" {
		t.Fatalf("unexpected command %q", cmd.Command)
	}
	if cmd.Dir != "/opt/kahiin-db" {
		t.Fatalf("unexpected dir %q", cmd.Dir)
	}
	if len(cmd.Args) != 2 || cmd.Args[0] != "db" || cmd.Args[1] != "user" {
		t.Fatalf("unexpected args %v", cmd.Args)
	}
}

func TestScript_PrepareMakesExecutable(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "dropDB"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	s := Script{BaseDir: base, SubDir: "dropDB", Name: ScriptDebian, GOOS: "linux"}
	if err := os.WriteFile(s.Path(), []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := s.Prepare(); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	info, err := os.Stat(s.Path())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Fatalf("expected script to be executable, mode %v", info.Mode())
	}
}

func TestScript_PrepareMissing(t *testing.T) {
	s := Script{BaseDir: t.TempDir(), SubDir: "initDB", Name: ScriptArch, GOOS: "linux"}
	err := s.Prepare()
	var spawnErr *lib.SpawnError
	if !errors.As(err, &spawnErr) {
		t.Fatalf("expected SpawnError, got %v", err)
	}
}

func TestLocalScript(t *testing.T) {
	if cmd := LocalScript("linux", "/srv/kahiin", "start"); cmd.Command != "./start.sh" || cmd.Dir != "/srv/kahiin" {
		t.Fatalf("unexpected unix command %+v", cmd)
	}
	if cmd := LocalScript("windows", `C:\kahiin`, "build"); cmd.Command != "build.bat" {
		t.Fatalf("unexpected windows command %+v", cmd)
	}
}
