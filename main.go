package main

import (
	"os"

	"github.com/rhkp/tpcds-util/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
