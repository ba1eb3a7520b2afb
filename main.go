package main

import (
	"os"

	"github.com/recruiterlab/talentmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
