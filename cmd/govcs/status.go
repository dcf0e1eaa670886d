package main

import "fmt"

func runStatus(args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	entries, err := repo.Status()
	if err != nil {
		return err
	}

	for _, e := range entries {
		staged := e.Staged
		if staged == "" {
			staged = "-"
		}
		worktree := e.Worktree
		if worktree == "" {
			worktree = "-"
		}
		fmt.Printf("%-10s %-10s %s\n", staged, worktree, e.Path)
	}
	return nil
}
