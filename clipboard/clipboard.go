package clipboard

import "github.com/andareed/marketscope/logging"

// CopyWithFallback tries the platform clipboard first and falls back to an
// OSC52 escape sequence, which works over SSH when the terminal supports it.
func CopyWithFallback(text string) error {
	if err := Copy(text); err != nil {
		logging.Warnf("Clipboard: platform copy failed (%v), trying OSC52", err)
		return copyOSC52(text)
	}
	return nil
}
