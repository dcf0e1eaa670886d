// Command govcs is the command-line surface over the plumbing and
// worktree packages: init, hash-object, cat-file, ls-tree, log,
// rev-parse, show-ref, tag, branch, update-ref, ls-files, check-ignore,
// status, add, rm, and commit.
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/cyucelen/govcs"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "init":
		err = runInit(args)
	case "hash-object":
		err = runHashObject(args)
	case "cat-file":
		err = runCatFile(args)
	case "ls-tree":
		err = runLsTree(args)
	case "log":
		err = runLog(args)
	case "rev-parse":
		err = runRevParse(args)
	case "show-ref":
		err = runShowRef(args)
	case "tag":
		err = runTag(args)
	case "branch":
		err = runBranch(args)
	case "update-ref":
		err = runUpdateRef(args)
	case "ls-files":
		err = runLsFiles(args)
	case "check-ignore":
		err = runCheckIgnore(args)
	case "status":
		err = runStatus(args)
	case "add":
		err = runAdd(args)
	case "rm":
		err = runRm(args)
	case "commit":
		err = runCommit(args)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: govcs <init|hash-object|cat-file|ls-tree|log|rev-parse|show-ref|tag|branch|update-ref|ls-files|check-ignore|status|add|rm|commit> [args]")
}

func openRepo() (*govcs.Repository, error) {
	return govcs.Find(".")
}
