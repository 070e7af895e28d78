//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly

package notify

func newPlatformNotifier(string) (Notifier, error) {
	return Unsupported{}, ErrUnsupported
}
