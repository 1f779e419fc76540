//go:build !linux && !darwin && !windows
// +build !linux,!darwin,!windows

package elefren

func goOSIdentifier() string {
	return ""
}
