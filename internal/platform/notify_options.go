// Package platform sends desktop notifications through whatever the host
// operating system provides.
package platform

import "time"

// AppName is reported to notification daemons.
const AppName = "inkpad"

// Options tweaks a notification.
type Options struct {
	// IconPath, when set, names an image or icon theme entry.
	IconPath string
	// Expire is how long the notification stays up. Zero leaves it to the
	// platform.
	Expire time.Duration
}
