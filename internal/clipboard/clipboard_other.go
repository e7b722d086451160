//go:build !(linux || freebsd || openbsd || netbsd || dragonfly || darwin || windows) || ((darwin || windows) && !cgo)

package clipboard

import "errors"

var errUnsupported = errors.New("clipboard text operations are not supported on this platform")

func writeText(string) error { return errUnsupported }

func readText() (string, error) { return "", errUnsupported }
