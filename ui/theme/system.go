package theme

import "errors"

// ErrNoSystemPreference is returned where the OS exposes no light/dark
// preference the app can read.
var ErrNoSystemPreference = errors.New("system theme preference unavailable")

// Initial resolves the starting mode: the OS preference when follow is set
// and readable, otherwise fallback.
func Initial(follow, fallback bool) (dark bool, err error) {
	if !follow {
		return fallback, nil
	}
	dark, err = SystemPrefersDark()
	if err != nil {
		return fallback, err
	}
	return dark, nil
}
