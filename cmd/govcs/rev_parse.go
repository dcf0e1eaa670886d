package main

import (
	"fmt"

	"github.com/cyucelen/govcs/plumbing/revision"
)

func runRevParse(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: govcs rev-parse <rev>")
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	hash, err := revision.Resolve(repo.Storer, args[0])
	if err != nil {
		return err
	}

	fmt.Println(hash.String())
	return nil
}
