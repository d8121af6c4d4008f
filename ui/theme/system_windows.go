//go:build windows

package theme

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const personalizeKey = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`

// SystemPrefersDark reads the per-user "AppsUseLightTheme" value.
func SystemPrefersDark() (bool, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return false, fmt.Errorf("open personalize key: %w", err)
	}
	defer k.Close()
	v, _, err := k.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		return false, fmt.Errorf("read AppsUseLightTheme: %w", err)
	}
	return v == 0, nil
}
