package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/cyucelen/govcs/plumbing/revision"
)

func runLog(args []string) error {
	rev := "HEAD"
	if len(args) > 0 {
		rev = args[0]
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	start, err := revision.Resolve(repo.Storer, rev)
	if err != nil {
		return err
	}

	commits, err := repo.Log(start)
	if err != nil {
		return err
	}

	for _, c := range commits {
		fmt.Printf("commit %s\n", c.Hash())
		fmt.Printf("Author: %s\n", c.Author.String())
		fmt.Printf("Date:   %s (%s)\n", c.Author.When.Format("Mon Jan 2 15:04:05 2006 -0700"), humanize.Time(c.Author.When))
		fmt.Printf("\n    %s\n\n", c.MessageSummary())
	}
	return nil
}
