package main

import (
	"os"

	"github.com/thenoetrevino/paso/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
