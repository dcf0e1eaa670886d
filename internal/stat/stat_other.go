//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package stat

import "os"

// Fill is a no-op on platforms without a syscall.Stat_t equivalent; the
// index entry keeps its zero dev/inode/uid/gid/creation time.
func Fill(info os.FileInfo, out *Sys) {}
