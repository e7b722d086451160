//go:build linux

package platform

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notifyDest = "org.freedesktop.Notifications"
	notifyPath = dbus.ObjectPath("/org/freedesktop/Notifications")
)

// Notify sends a notification over the session bus.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("session bus: %w", err)
	}
	defer conn.Close()

	expire := int32(-1)
	if opts.Expire > 0 {
		expire = int32(opts.Expire.Milliseconds())
	}
	icon := opts.IconPath
	if icon == "" {
		icon = "accessories-text-editor"
	}
	hints := map[string]dbus.Variant{"category": dbus.MakeVariant("transfer")}
	call := conn.Object(notifyDest, notifyPath).Call(notifyDest+".Notify", 0,
		AppName, uint32(0), icon, title, body, []string{}, hints, expire)
	if call.Err != nil {
		return fmt.Errorf("notify: %w", call.Err)
	}
	return nil
}
