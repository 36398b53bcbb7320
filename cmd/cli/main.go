package main

import "github.com/wyvernasm/x64encoder/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
