package main

import "fmt"

func runLsFiles(args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	paths, err := repo.LsFiles()
	if err != nil {
		return err
	}

	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}
