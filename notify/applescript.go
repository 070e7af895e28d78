package notify

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// AppleScript posts notifications through osascript. Notification Center
// has no way to edit a delivered notification, so Update is unsupported.
type AppleScript struct {
	run func(name string, args ...string) error
}

// NewAppleScript returns an osascript-backed notifier.
func NewAppleScript() (*AppleScript, error) {
	if _, err := exec.LookPath("osascript"); err != nil {
		return nil, fmt.Errorf("find osascript: %w", err)
	}
	return &AppleScript{run: runCommand}, nil
}

// Post implements Notifier.
func (n *AppleScript) Post(summary, body string, timeout time.Duration) (Handle, error) {
	script := "display notification " + appleScriptString(body) + " with title " + appleScriptString(summary)
	if err := n.run("osascript", "-e", script); err != nil {
		return Handle{}, fmt.Errorf("osascript: %w", err)
	}
	return Handle{timeout: timeout}, nil
}

// Update implements Notifier.
func (n *AppleScript) Update(Handle, string, string) error {
	return ErrUnsupported
}

// CanUpdate implements LiveUpdater.
func (n *AppleScript) CanUpdate() bool {
	return false
}

func appleScriptString(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	return strconv.Quote(value)
}

func runCommand(name string, args ...string) error {
	output, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		trimmed := strings.TrimSpace(string(output))
		if trimmed != "" {
			return fmt.Errorf("%w: %s", err, trimmed)
		}
		return err
	}
	return nil
}
