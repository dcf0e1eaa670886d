package main

import (
	"flag"
	"fmt"

	"github.com/cyucelen/govcs/plumbing/filemode"
)

func runLsTree(args []string) error {
	fs := flag.NewFlagSet("ls-tree", flag.ContinueOnError)
	recursive := fs.Bool("r", false, "recurse into subtrees")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: govcs ls-tree [-r] <tree-ish>")
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	entries, err := repo.LsTree(fs.Arg(0), *recursive)
	if err != nil {
		return err
	}

	for _, e := range entries {
		kind := "blob"
		switch e.Mode {
		case filemode.Dir:
			kind = "tree"
		case filemode.Submodule:
			kind = "commit"
		}
		fmt.Printf("%s %s %s\t%s\n", e.Mode, kind, e.Hash, e.Name)
	}
	return nil
}
