package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cyucelen/govcs/plumbing"
)

func runHashObject(args []string) error {
	t := plumbing.BlobObject
	write := false

	var path string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-w":
			write = true
		case "-t":
			i++
			tt, ok := plumbing.ParseObjectType(args[i])
			if !ok {
				return fmt.Errorf("unknown object type %q", args[i])
			}
			t = tt
		default:
			path = args[i]
		}
	}

	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	var hash plumbing.Hash
	if write {
		repo, err := openRepo()
		if err != nil {
			return err
		}
		hash, err = repo.HashObject(t, data, true)
		if err != nil {
			return err
		}
	} else {
		h := plumbing.NewHasher(t, int64(len(data)))
		h.Write(data)
		hash = h.Sum()
	}

	fmt.Println(hash.String())
	return nil
}
