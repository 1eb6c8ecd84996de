package watcher

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// Notifier delivers alerts as desktop notifications. Critical alerts are
// raised with higher urgency so they stay on screen.
type Notifier struct {
	goos     string
	lookPath func(string) (string, error)
	run      func(name string, args ...string) error
	fallback io.Writer
}

// NewNotifier returns a Notifier for the current platform.
func NewNotifier() *Notifier {
	return &Notifier{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		run:      func(name string, args ...string) error { return exec.Command(name, args...).Run() },
		fallback: os.Stderr,
	}
}

// Notify sends alert through osascript on macOS or notify-send on Linux.
// When neither is usable the alert is written to stderr instead.
func Notify(alert Alert) error {
	return NewNotifier().Notify(alert)
}

// Notify delivers a single alert.
func (n *Notifier) Notify(alert Alert) error {
	name, args, ok := n.command(alert)
	if !ok {
		return n.print(alert)
	}
	if err := n.run(name, args...); err != nil {
		return n.print(alert)
	}
	return nil
}

// command builds the platform notification command for alert.
func (n *Notifier) command(alert Alert) (string, []string, bool) {
	switch n.goos {
	case "darwin":
		script := fmt.Sprintf(`display notification %q with title "mindwell" subtitle %q`, alert.Message, alert.Title)
		if alert.Level == "critical" {
			script += ` sound name "Submarine"`
		}
		return "osascript", []string{"-e", script}, true
	case "linux":
		if _, err := n.lookPath("notify-send"); err != nil {
			return "", nil, false
		}
		return "notify-send", []string{
			"--urgency", urgency(alert.Level),
			"--app-name", "mindwell",
			"mindwell: " + alert.Title,
			alert.Message,
		}, true
	}
	return "", nil, false
}

func (n *Notifier) print(alert Alert) error {
	_, err := fmt.Fprintf(n.fallback, "[%s] %s: %s\n", alert.Level, alert.Title, alert.Message)
	return err
}

// urgency maps an alert level to a notify-send urgency.
func urgency(level string) string {
	switch level {
	case "critical":
		return "critical"
	case "info":
		return "low"
	}
	return "normal"
}
