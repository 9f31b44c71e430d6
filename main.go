package main

import (
	"os"

	"github.com/takaishi/mgrep/cli"
)

func main() {
	os.Exit(cli.Execute())
}
