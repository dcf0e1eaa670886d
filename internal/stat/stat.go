// Package stat fills the platform-specific fields of a staging index
// entry (device, inode, owner, creation time) from an os.FileInfo,
// isolating the one build-tagged syscall.Stat_t layout difference per
// OS family behind a single call.
package stat

import "time"

// Sys holds the fields Fill can populate from the OS-specific stat
// structure.
type Sys struct {
	Dev, Inode, UID, GID uint32
	CreatedAt            time.Time
}
