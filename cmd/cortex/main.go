package main

import (
	"os"

	"github.com/antoineschaller/cortex-skills/internal/adapters/inbound/cli"
)

func main() {
	os.Exit(cli.Execute())
}
