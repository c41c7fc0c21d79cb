package main

import (
	"fmt"
	"os"

	"github.com/nojima/httpui"
)

func main() {
	if err := httpui.Main(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
