//go:build !windows

package theme

// SystemPrefersDark has no portable source outside Windows.
func SystemPrefersDark() (bool, error) { return false, ErrNoSystemPreference }
