package notify

func newPlatformNotifier(string) (Notifier, error) {
	return NewAppleScript()
}
