package main

import "fmt"

func runBranch(args []string) error {
	force := false
	var rest []string
	for _, a := range args {
		if a == "-f" {
			force = true
			continue
		}
		rest = append(rest, a)
	}

	if len(rest) < 1 {
		return fmt.Errorf("usage: govcs branch [-f] <name> [rev]")
	}

	name := rest[0]
	rev := "HEAD"
	if len(rest) > 1 {
		rev = rest[1]
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	return repo.Branch(name, rev, force)
}
