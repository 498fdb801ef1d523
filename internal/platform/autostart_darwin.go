//go:build darwin

package platform

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (service *platformService) EnableAutostart(appName, execPath string) error {
	if err := checkEnable(appName, execPath); err != nil {
		return err
	}
	plistPath, err := launchAgentPath(appName)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return writeLoginItem(plistPath, buildLaunchAgentPlist(launchAgentLabel(appName), execPath))
}

func (service *platformService) DisableAutostart(appName string) error {
	if err := checkDisable(appName); err != nil {
		return err
	}
	plistPath, err := launchAgentPath(appName)
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return removeLoginItem(plistPath)
}

func launchAgentPath(appName string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents", launchAgentLabel(appName)+".plist"), nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "Library", "Application Support")
}

func launchAgentLabel(appName string) string {
	return "com.pomodoro." + autostartSlug(appName)
}

// buildLaunchAgentPlist renders a per-user agent that starts the timer once
// in the graphical session.
func buildLaunchAgentPlist(label, execPath string) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">` + "\n")
	b.WriteString(`<plist version="1.0">` + "\n<dict>\n")
	plistString(&b, "Label", label)
	b.WriteString("\t<key>ProgramArguments</key>\n\t<array>\n\t\t<string>")
	_ = xml.EscapeText(&b, []byte(execPath))
	b.WriteString("</string>\n\t</array>\n")
	plistString(&b, "ProcessType", "Interactive")
	plistString(&b, "LimitLoadToSessionType", "Aqua")
	b.WriteString("\t<key>RunAtLoad</key>\n\t<true/>\n")
	b.WriteString("</dict>\n</plist>\n")
	return b.String()
}

func plistString(b *strings.Builder, key, value string) {
	b.WriteString("\t<key>" + key + "</key>\n\t<string>")
	_ = xml.EscapeText(b, []byte(value))
	b.WriteString("</string>\n")
}
