package notify

import (
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	dbusDest   = "org.freedesktop.Notifications"
	dbusPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	dbusNotify = dbusDest + ".Notify"
	dbusClose  = dbusDest + ".CloseNotification"
)

type caller interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// DBus talks to the freedesktop notification daemon on the session bus.
type DBus struct {
	appName string
	conn    *dbus.Conn
	obj     caller
}

// NewDBus connects to the session bus.
func NewDBus(appName string) (*DBus, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	return &DBus{
		appName: appName,
		conn:    conn,
		obj:     conn.Object(dbusDest, dbusPath),
	}, nil
}

// Post implements Notifier.
func (n *DBus) Post(summary, body string, timeout time.Duration) (Handle, error) {
	id, err := n.notify(0, summary, body, timeout)
	if err != nil {
		return Handle{}, err
	}
	return Handle{id: id, timeout: timeout}, nil
}

// Update implements Notifier by reusing the notification id as replaces_id.
func (n *DBus) Update(handle Handle, summary, body string) error {
	if handle.id == 0 {
		return fmt.Errorf("update notification: no notification posted")
	}
	_, err := n.notify(handle.id, summary, body, handle.timeout)
	return err
}

// Dismiss implements Dismisser.
func (n *DBus) Dismiss(handle Handle) error {
	if handle.id == 0 {
		return nil
	}
	if err := n.obj.Call(dbusClose, 0, handle.id).Err; err != nil {
		return fmt.Errorf("close notification %d: %w", handle.id, err)
	}
	return nil
}

// Close releases the bus connection.
func (n *DBus) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}

func (n *DBus) notify(replaces uint32, summary, body string, timeout time.Duration) (uint32, error) {
	expire := int32(timeout / time.Millisecond)
	call := n.obj.Call(dbusNotify, 0,
		n.appName,
		replaces,
		"",
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{},
		expire,
	)
	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("notify: %w", err)
	}
	return id, nil
}
