//go:build linux

package monitor

import (
	"os/exec"
	"strings"
)

// gsettingsGet shells out to gsettings for keys the active portal
// backend does not expose. Output like "'prefer-dark'\n" is stripped of
// quotes and whitespace.
func gsettingsGet(schema, key string) (string, bool) {
	if _, err := exec.LookPath("gsettings"); err != nil {
		return "", false
	}
	output, err := exec.Command("gsettings", "get", schema, key).Output()
	if err != nil {
		return "", false
	}
	result := strings.TrimSpace(string(output))
	result = strings.Trim(result, "'\"")
	return result, true
}
