package main

import (
	"github.com/pterm/pterm"

	"github.com/cyucelen/govcs"
)

func runInit(args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	repo, err := govcs.Init(dir)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("initialized empty repository in %s/%s", repo.Root(), govcs.GitDir)
	return nil
}
