//go:build linux

package stat

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// Fill populates the platform-specific fields of an index entry (device,
// inode, owner, creation time) from info, the result of an os.Lstat on
// the working tree file.
func Fill(info os.FileInfo, out *Sys) {
	st, ok := info.Sys().(*unix.Stat_t)
	if !ok {
		return
	}
	out.Dev = uint32(st.Dev)
	out.Inode = uint32(st.Ino)
	out.UID = st.Uid
	out.GID = st.Gid
	out.CreatedAt = time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
}
