package main

import (
	"fmt"

	"github.com/cyucelen/govcs/plumbing"
)

func runUpdateRef(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: govcs update-ref <ref> <rev>")
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	return repo.UpdateRef(plumbing.ReferenceName(args[0]), args[1])
}
