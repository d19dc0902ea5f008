package user

import (
	"os"
	"os/user"
	"strings"
)

// lookup is swapped out in tests
var lookup = user.Current

// CurrentUsername returns the name items are assigned to with --mine.
// PASO_USER wins, then the OS account, then $USER. It returns ""
// when none of them yields a name.
func CurrentUsername() string {
	if name := strings.TrimSpace(os.Getenv("PASO_USER")); name != "" {
		return name
	}
	if u, err := lookup(); err == nil && u.Username != "" {
		return u.Username
	}
	return strings.TrimSpace(os.Getenv("USER"))
}
