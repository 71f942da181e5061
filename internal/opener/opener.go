// Package opener hands task links to the desktop: the default browser or the clipboard.
package opener

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// Opener is what the TUI needs from the desktop.
type Opener interface {
	Open(url string) error
	Copy(text string) error
}

// System opens links with the platform launcher.
type System struct{}

func (System) Open(url string) error {
	cmd, err := command(runtime.GOOS, url)
	if err != nil {
		return err
	}
	// fire and forget, the browser outlives us
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	go cmd.Wait()
	return nil
}

func (System) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

func command(goos, url string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", url), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url), nil
	}
	return nil, fmt.Errorf("unsupported platform: %s", goos)
}

// Recorder keeps every request instead of acting on it.
type Recorder struct {
	Opened []string
	Copied []string
	Err    error
}

func (r *Recorder) Open(url string) error {
	if r.Err != nil {
		return r.Err
	}
	r.Opened = append(r.Opened, url)
	return nil
}

func (r *Recorder) Copy(text string) error {
	if r.Err != nil {
		return r.Err
	}
	r.Copied = append(r.Copied, text)
	return nil
}
