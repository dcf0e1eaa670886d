package govcs

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cyucelen/govcs/internal/stat"
	"github.com/cyucelen/govcs/plumbing"
	"github.com/cyucelen/govcs/plumbing/filemode"
	"github.com/cyucelen/govcs/plumbing/format/gitignore"
	"github.com/cyucelen/govcs/plumbing/format/index"
	"github.com/cyucelen/govcs/plumbing/object"
)

// Ignore builds the gitignore.Matcher for the whole working tree: every
// .gitignore file found while walking, plus the absolute info/exclude
// rule set, in that precedence order.
func (r *Repository) Ignore() (*gitignore.Matcher, error) {
	m := gitignore.NewMatcher()

	if excl, err := r.readIgnoreFile(r.gitdir, "info/exclude"); err == nil {
		m.AddAbsolute(excl)
	}

	err := walkDir(r.worktree, "", func(dir string, entries []os.FileInfo) error {
		if dir == GitDir {
			return errSkipDir
		}
		for _, e := range entries {
			if e.Name() == ".gitignore" && !e.IsDir() {
				patterns, err := r.readIgnoreFile(r.worktree, join(dir, ".gitignore"))
				if err != nil {
					return err
				}
				m.AddScoped(dir, patterns)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (r *Repository) readIgnoreFile(fs billyFS, path string) ([]*gitignore.Pattern, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	// Only a working-tree .gitignore is scoped to its directory; rules
	// read from the gitdir (info/exclude) apply to every path.
	var domain []string
	if dir := dirOf(path); dir != "" && fs == billyFS(r.worktree) {
		domain = strings.Split(dir, "/")
	}

	var patterns []*gitignore.Pattern
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}
	return patterns, nil
}

// IsIgnored reports whether path (relative to the working tree root,
// slash-separated) is excluded by the ignore rules.
func (r *Repository) IsIgnored(m *gitignore.Matcher, path string, isDir bool) bool {
	return m.Match(path, isDir) == gitignore.Exclude
}

// Add stages path: it hashes and writes the blob, and adds or updates
// its index entry, refusing a path excluded by the ignore rules unless
// it is already tracked.
func (r *Repository) Add(paths []string) error {
	idx, err := r.Index()
	if err != nil {
		return err
	}

	m, err := r.Ignore()
	if err != nil {
		return err
	}

	for _, p := range paths {
		if err := r.addOne(idx, m, p); err != nil {
			return err
		}
	}

	return r.SetIndex(idx)
}

func (r *Repository) addOne(idx *index.Index, m *gitignore.Matcher, path string) error {
	path = toSlash(path)

	info, err := r.worktree.Stat(path)
	if err != nil {
		return err
	}

	if _, err := idx.Entry(path); err != nil && r.IsIgnored(m, path, info.IsDir()) {
		return fmt.Errorf("path %q is excluded by ignore rules", path)
	}

	f, err := r.worktree.Open(path)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return err
	}

	blob := object.NewBlob(data)
	obj, err := blob.Encode()
	if err != nil {
		return err
	}
	hash, err := r.Storer.NewEncodedObject(obj)
	if err != nil {
		return err
	}

	idx.Remove(path)
	e := idx.Add(path)
	e.Hash = hash
	e.Size = uint32(len(data))
	e.Mode = filemode.FromOSFileMode(info.Mode())

	var sys stat.Sys
	stat.Fill(info, &sys)
	e.Dev, e.Inode, e.UID, e.GID = sys.Dev, sys.Inode, sys.UID, sys.GID
	e.CreatedAt = sys.CreatedAt
	e.ModifiedAt = info.ModTime()

	return nil
}

// Remove unstages path and deletes it from the working tree, unless
// cached is true.
func (r *Repository) Remove(paths []string, cached bool) error {
	idx, err := r.Index()
	if err != nil {
		return err
	}

	for _, p := range paths {
		p = toSlash(p)
		if _, err := idx.Remove(p); err != nil {
			return err
		}
		if !cached {
			if err := r.worktree.Remove(p); err != nil && !os.IsNotExist(err) {
				return err
			}
		}
	}

	return r.SetIndex(idx)
}

// StatusEntry is one row of a status report.
type StatusEntry struct {
	Path     string
	Staged   string // "added", "modified", "deleted", ""
	Worktree string // "modified", "deleted", "untracked", ""
}

// Status compares HEAD's tree, the index, and the working tree, the way
// `git status` reports the three-way diff.
func (r *Repository) Status() ([]StatusEntry, error) {
	idx, err := r.Index()
	if err != nil {
		return nil, err
	}

	headTree, err := r.headTreeLeaves()
	if err != nil {
		return nil, err
	}

	m, err := r.Ignore()
	if err != nil {
		return nil, err
	}

	entries := map[string]*StatusEntry{}
	get := func(path string) *StatusEntry {
		e, ok := entries[path]
		if !ok {
			e = &StatusEntry{Path: path}
			entries[path] = e
		}
		return e
	}

	for _, e := range idx.Entries {
		head, inHead := headTree[e.Name]
		switch {
		case !inHead:
			get(e.Name).Staged = "added"
		case head != e.Hash:
			get(e.Name).Staged = "modified"
		}
	}
	for path := range headTree {
		if _, err := idx.Entry(path); err != nil {
			get(path).Staged = "deleted"
		}
	}

	err = walkDir(r.worktree, "", func(dir string, fis []os.FileInfo) error {
		if dir == GitDir {
			return errSkipDir
		}
		for _, fi := range fis {
			if fi.IsDir() {
				continue
			}
			path := join(dir, fi.Name())
			if r.IsIgnored(m, path, false) {
				continue
			}

			if e, err := idx.Entry(path); err == nil {
				data, rerr := readFile(r.worktree, path)
				if rerr != nil {
					return rerr
				}
				sum := plumbing.NewHasher(plumbing.BlobObject, int64(len(data)))
				sum.Write(data)
				if sum.Sum() != e.Hash {
					get(path).Worktree = "modified"
				}
			} else {
				get(path).Worktree = "untracked"
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, e := range idx.Entries {
		if _, err := r.worktree.Stat(e.Name); os.IsNotExist(err) {
			get(e.Name).Worktree = "deleted"
		}
	}

	var out []StatusEntry
	for _, e := range entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// headTreeLeaves flattens HEAD's tree into a path -> blob hash map, or
// returns an empty map for an unborn HEAD.
func (r *Repository) headTreeLeaves() (map[string]plumbing.Hash, error) {
	headRef, err := r.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return map[string]plumbing.Hash{}, nil
	}

	headHash := headRef.Hash()
	if headRef.Type() == plumbing.SymbolicReference {
		target, err := r.Storer.Reference(headRef.Target())
		if err != nil {
			return map[string]plumbing.Hash{}, nil
		}
		headHash = target.Hash()
	}

	obj, err := r.Storer.EncodedObject(headHash)
	if err != nil {
		return nil, err
	}
	commit, err := object.DecodeCommit(headHash, obj)
	if err != nil {
		return nil, err
	}

	leaves := map[string]plumbing.Hash{}
	if err := r.flattenTree(commit.TreeHash, "", leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *Repository) flattenTree(hash plumbing.Hash, prefix string, out map[string]plumbing.Hash) error {
	obj, err := r.Storer.EncodedObject(hash)
	if err != nil {
		return err
	}
	tree, err := object.DecodeTree(hash, obj)
	if err != nil {
		return err
	}

	for _, e := range tree.Entries {
		path := e.Name
		if prefix != "" {
			path = prefix + "/" + path
		}
		if e.Mode == filemode.Dir {
			if err := r.flattenTree(e.Hash, path, out); err != nil {
				return err
			}
			continue
		}
		out[path] = e.Hash
	}
	return nil
}

func readFile(fs billyFS, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

func dirOf(p string) string {
	i := strings.LastIndexByte(p, '/')
	if i < 0 {
		return ""
	}
	return p[:i]
}

func join(a, b string) string {
	if a == "" {
		return b
	}
	return a + "/" + b
}
