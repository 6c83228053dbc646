// +build !android !cgo

package logcat

import "os"

func defaultPlatform() Platform {
	return NewConsole(os.Stderr, ConsoleOptions{})
}
