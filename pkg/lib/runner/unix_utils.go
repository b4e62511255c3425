//go:build !windows

package runner

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func groupSysProcAttr() *syscall.SysProcAttr {
	// New process group to manage children as a unit
	return &syscall.SysProcAttr{Setpgid: true}
}

func processGroup(pid int) int {
	pgid, err := unix.Getpgid(pid)
	if err != nil {
		// Already exited and reaped; Setpgid made the leader's pid the group id.
		return pid
	}
	return pgid
}

func terminateGroup(pid, pgid int) error {
	if pgid <= 0 || pgid == unix.Getpgrp() {
		return unix.Kill(pid, unix.SIGTERM)
	}
	// Negative pid addresses the whole process group
	return unix.Kill(-pgid, unix.SIGTERM)
}
