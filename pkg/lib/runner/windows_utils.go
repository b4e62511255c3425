//go:build windows

package runner

import (
	"os/exec"
	"strconv"
	"syscall"
)

func groupSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
}

func processGroup(pid int) int {
	return pid
}

// terminateGroup kills the process tree rooted at pid.
func terminateGroup(pid, _ int) error {
	return exec.Command("taskkill", "/T", "/F", "/PID", strconv.Itoa(pid)).Run()
}
