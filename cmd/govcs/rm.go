package main

import "fmt"

func runRm(args []string) error {
	cached := false
	var paths []string
	for _, a := range args {
		if a == "--cached" {
			cached = true
			continue
		}
		paths = append(paths, a)
	}

	if len(paths) < 1 {
		return fmt.Errorf("usage: govcs rm [--cached] <path>...")
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	return repo.Remove(paths, cached)
}
