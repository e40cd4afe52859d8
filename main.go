package main

import "github.com/mowtools/cmd"

func main() {
	cmd.Execute()
}
