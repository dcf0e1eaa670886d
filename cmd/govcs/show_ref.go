package main

import "fmt"

func runShowRef(args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	refs, err := repo.ShowRefs()
	if err != nil {
		return err
	}

	for _, ref := range refs {
		fmt.Printf("%s %s\n", ref.Hash(), ref.Name())
	}
	return nil
}
