// +build android,cgo

package logcat

/*
#cgo LDFLAGS: -llog

#include <stdlib.h>
#include <android/log.h>
*/
import "C"

import (
	"strings"
	"unsafe"
)

// Android is the Platform writing to the device log through liblog
type Android struct {
	// Renderer renders failures (RenderFailure when nil)
	Renderer func(error) string
}

func defaultPlatform() Platform {
	return &Android{}
}

// Println implements Platform
func (a *Android) Println(p Priority, tag, msg string, failure error) {
	if failure != nil {
		msg = msg + "\n" + strings.TrimRight(a.StackTraceString(failure), "\n")
	}

	ctag := C.CString(tag)
	defer C.free(unsafe.Pointer(ctag))
	cmsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cmsg))

	C.__android_log_write(C.int(p), ctag, cmsg)
}

// IsLoggable implements Platform
//
// Filtering happens in the log daemon, so every record is handed over.
func (a *Android) IsLoggable(tag string, p Priority) bool {
	return p >= Verbose && p <= Assert
}

// StackTraceString implements Platform
func (a *Android) StackTraceString(failure error) string {
	if failure == nil {
		return ""
	}
	if a.Renderer != nil {
		return a.Renderer(failure)
	}
	return RenderFailure(failure)
}
