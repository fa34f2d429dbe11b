package main

import "github.com/ehogberg/happygit/cmd"

func main() {
	cmd.Execute()
}
