// Package notify posts desktop notifications and updates them in place.
package notify

import (
	"errors"
	"time"
)

// ErrUnsupported indicates the platform cannot perform the requested operation.
var ErrUnsupported = errors.New("desktop notifications unsupported")

// Persistent is the timeout for notifications that stay visible until they
// are updated or dismissed.
const Persistent time.Duration = 0

// Handle identifies a posted notification.
type Handle struct {
	id      uint32
	timeout time.Duration
}

// ID returns the backend identifier for the notification.
func (h Handle) ID() uint32 {
	return h.id
}

// Notifier is a desktop notification sink.
type Notifier interface {
	// Post shows a notification. A zero timeout keeps it visible until it is
	// updated or dismissed.
	Post(summary, body string, timeout time.Duration) (Handle, error)
	// Update replaces the text of a visible notification.
	Update(handle Handle, summary, body string) error
}

// Dismisser is implemented by notifiers that can close a notification.
type Dismisser interface {
	Dismiss(handle Handle) error
}

// LiveUpdater is implemented by notifiers that know whether Update can
// succeed on the current platform.
type LiveUpdater interface {
	CanUpdate() bool
}

// CanUpdate reports whether n can replace the text of a posted
// notification. Notifiers that do not implement LiveUpdater are assumed to.
func CanUpdate(n Notifier) bool {
	updater, ok := n.(LiveUpdater)
	return !ok || updater.CanUpdate()
}

// New returns the notifier for the current platform. On platforms without
// a notification service it returns Unsupported along with ErrUnsupported.
func New(appName string) (Notifier, error) {
	return newPlatformNotifier(appName)
}

// Nop discards all notifications.
type Nop struct{}

// Post implements Notifier.
func (Nop) Post(string, string, time.Duration) (Handle, error) { return Handle{}, nil }

// Update implements Notifier.
func (Nop) Update(Handle, string, string) error { return nil }

// Unsupported fails every operation with ErrUnsupported.
type Unsupported struct{}

// Post implements Notifier.
func (Unsupported) Post(string, string, time.Duration) (Handle, error) {
	return Handle{}, ErrUnsupported
}

// Update implements Notifier.
func (Unsupported) Update(Handle, string, string) error { return ErrUnsupported }

// CanUpdate implements LiveUpdater.
func (Unsupported) CanUpdate() bool { return false }
