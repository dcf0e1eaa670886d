package main

import "fmt"

func runAdd(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: govcs add <path>...")
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	return repo.Add(args)
}
