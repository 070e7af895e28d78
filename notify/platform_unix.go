//go:build linux || freebsd || openbsd || netbsd || dragonfly

package notify

func newPlatformNotifier(appName string) (Notifier, error) {
	return NewDBus(appName)
}
