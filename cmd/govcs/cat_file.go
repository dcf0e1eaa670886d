package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/cyucelen/govcs/internal/iocopy"
	"github.com/cyucelen/govcs/plumbing/object"
)

func runCatFile(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: govcs cat-file [-t|-s|-p] <object>")
	}

	mode := "-p"
	rev := args[0]
	if len(args) >= 2 {
		mode, rev = args[0], args[1]
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	obj, err := repo.CatFile(rev)
	if err != nil {
		return err
	}

	switch mode {
	case "-t":
		fmt.Println(obj.Type())
	case "-s":
		encoded, err := obj.Encode()
		if err != nil {
			return err
		}
		fmt.Println(humanize.Bytes(uint64(encoded.Size)))
	default:
		printObject(obj)
	}

	return nil
}

func printObject(obj object.Object) {
	switch o := obj.(type) {
	case *object.Blob:
		iocopy.Copy(os.Stdout, bytes.NewReader(o.Bytes()))
	case *object.Tree:
		for _, e := range o.Entries {
			fmt.Printf("%s %s\t%s\n", e.Mode, e.Hash, e.Name)
		}
	case *object.Commit:
		fmt.Printf("tree %s\n", o.TreeHash)
		for _, p := range o.ParentHashes {
			fmt.Printf("parent %s\n", p)
		}
		fmt.Printf("author %s\n", o.Author.String())
		fmt.Printf("committer %s\n", o.Committer.String())
		fmt.Printf("\n%s", o.Message)
	case *object.Tag:
		fmt.Printf("object %s\n", o.TargetHash)
		fmt.Printf("type %s\n", o.TargetType)
		fmt.Printf("tag %s\n", o.Name)
		fmt.Printf("tagger %s\n", o.Tagger.String())
		fmt.Printf("\n%s", o.Message)
	}
}
