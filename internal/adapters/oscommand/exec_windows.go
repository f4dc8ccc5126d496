//go:build windows

package oscommand

import "os"

// Windows has no execute bit; CreateProcess decides at launch time.
func isExecutable(os.FileInfo) bool {
	return true
}
