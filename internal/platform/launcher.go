package platform

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	WindowsCmdFlag = "/c"
	StartCommand   = "start"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// LaunchDetached starts the file at path as a detached OS process: the
// installer or shortcut keeps running after this process exits and is
// never waited on. Returns an error when the process could not be spawned.
func LaunchDetached(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case OSWindows:
		cmd = exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", path)
	case OSDarwin:
		cmd = exec.Command(OpenCommand, path)
	case OSLinux:
		cmd = exec.Command(XDGOpenCommand, path)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start process: %w", err)
	}
	if cmd.Process == nil {
		return fmt.Errorf("process was not created for %s", path)
	}

	// Detach: never wait on the launcher.
	return cmd.Process.Release()
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
