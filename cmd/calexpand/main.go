package main

import "github.com/amascaro08/FloHub/internal/cli"

// version is overridden at build time via -ldflags.
var version = "0.1.0-dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
