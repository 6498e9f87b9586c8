// C bindings for the aicred engine. Build with:
//
//	go build -buildmode=c-shared -o libaicred.so ./ffi
//
// Strings returned by aicred_scan, aicred_list_providers and
// aicred_list_scanners must be freed with aicred_free. aicred_version and
// aicred_last_error return pointers the caller must not free; the error
// pointer is thread-local and valid until the next call from that thread.
// The keyfinder_ names are aliases kept for callers of the pre-rename ABI.
package main

/*
#include <stdlib.h>

extern void aicredSetErr(const char *msg);
extern const char *aicredErrPtr(void);
*/
import "C"

import (
	"sync"
	"unsafe"
)

// Overridable at build time:
//
//	-ldflags "-X main.libVersion=1.2.3"
var libVersion = "0.1.0"

var (
	versionOnce sync.Once
	versionC    *C.char
)

func setErrString(msg string) {
	cs := C.CString(msg)
	defer C.free(unsafe.Pointer(cs))
	C.aicredSetErr(cs)
}

func clearErr() {
	C.aicredSetErr(nil)
}

//export aicred_scan
func aicred_scan(homePath, optionsJSON *C.char) *C.char {
	clearErr()
	if homePath == nil {
		setErrString("invalid home path")
		return nil
	}
	if optionsJSON == nil {
		setErrString("invalid options JSON")
		return nil
	}
	out, err := scanJSON(C.GoString(homePath), []byte(C.GoString(optionsJSON)))
	if err != nil {
		setErrString(err.Error())
		return nil
	}
	return C.CString(string(out))
}

//export aicred_free
func aicred_free(ptr *C.char) {
	if ptr != nil {
		C.free(unsafe.Pointer(ptr))
	}
}

//export aicred_version
func aicred_version() *C.char {
	versionOnce.Do(func() { versionC = C.CString(libVersion) })
	return versionC
}

//export aicred_last_error
func aicred_last_error() *C.char {
	return C.aicredErrPtr()
}

//export aicred_list_providers
func aicred_list_providers() *C.char {
	clearErr()
	return C.CString(string(providersJSON()))
}

//export aicred_list_scanners
func aicred_list_scanners() *C.char {
	clearErr()
	return C.CString(string(scannersJSON()))
}

//export keyfinder_scan
func keyfinder_scan(homePath, optionsJSON *C.char) *C.char {
	return aicred_scan(homePath, optionsJSON)
}

//export keyfinder_free
func keyfinder_free(ptr *C.char) {
	aicred_free(ptr)
}

//export keyfinder_version
func keyfinder_version() *C.char {
	return aicred_version()
}

//export keyfinder_last_error
func keyfinder_last_error() *C.char {
	return aicred_last_error()
}

//export keyfinder_list_providers
func keyfinder_list_providers() *C.char {
	return aicred_list_providers()
}

//export keyfinder_list_scanners
func keyfinder_list_scanners() *C.char {
	return aicred_list_scanners()
}

func main() {}
