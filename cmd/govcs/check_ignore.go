package main

import "fmt"

func runCheckIgnore(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: govcs check-ignore <path>...")
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	result, err := repo.CheckIgnore(args)
	if err != nil {
		return err
	}

	for _, p := range args {
		if result[p] {
			fmt.Println(p)
		}
	}
	return nil
}
