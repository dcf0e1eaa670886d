package main

import "fmt"

func runTag(args []string) error {
	message := ""
	var rest []string

	for i := 0; i < len(args); i++ {
		if args[i] == "-m" {
			i++
			if i >= len(args) {
				return fmt.Errorf("-m requires a message")
			}
			message = args[i]
			continue
		}
		rest = append(rest, args[i])
	}

	if len(rest) < 1 {
		return fmt.Errorf("usage: govcs tag [-m message] <name> [rev]")
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

	return repo.Tag(name, rev, message)
}
