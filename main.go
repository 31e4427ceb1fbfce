package main

import "github.com/mkarray/mkarray/cmd"

// main is the entry point of the mkarray CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
