// Package notify delivers alarm reminders to the unplug-tray helper over its
// localhost webhook. When the tray app is not running, callers fall back to
// printing the reminder.
package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"
)

const (
	trayAppIdentifier = "unplug-tray"
	lockfileName      = "unplug-tray.lock"
	durationMs        = 8000
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

type Notifier struct{}

type webhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

func New() *Notifier {
	return &Notifier{}
}

// Notify posts the text to the tray app. Returns an error when the tray is
// not running or rejects the request.
func (n *Notifier) Notify(text string) error {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return fmt.Errorf("failed to get user config dir: %w", err)
	}

	lockfilePath := filepath.Join(configDir, trayAppIdentifier, lockfileName)
	port, secret, err := findAndValidateTrayProcess(lockfilePath)
	if err != nil {
		return err
	}

	return send(port, secret, webhookPayload{
		Text:       text,
		DurationMs: durationMs,
	})
}

// findAndValidateTrayProcess reads the tray lockfile (port|pid|secret) and
// checks that the recorded pid is actually the tray executable before
// trusting the port.
func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("unplug-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	portNum, err := strconv.Atoi(port)
	if err != nil || portNum < 1 || portNum > 65535 {
		return "", "", errors.New("invalid port number in lockfile")
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}

	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("unplug-tray process not running")
	}
	if !strings.HasPrefix(process.Executable(), trayAppIdentifier) {
		return "", "", fmt.Errorf("process with PID %d is not %s (is %s)", pid, trayAppIdentifier, process.Executable())
	}

	return port, secret, nil
}

func send(port, secret string, payload webhookPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("http://127.0.0.1:%s", port), bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Unplug-Secret", secret)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
