package main

import (
	"flag"
	"fmt"

	"github.com/pterm/pterm"
)

func runCommit(args []string) error {
	fs := flag.NewFlagSet("commit", flag.ContinueOnError)
	message := fs.String("m", "", "commit message")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *message == "" {
		return fmt.Errorf("usage: govcs commit -m <message>")
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	hash, err := repo.Commit(*message)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("committed %s", hash.String())
	return nil
}
