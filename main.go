package main

import "github.com/tranvictor/lensens/cmd"

func main() {
	cmd.Execute()
}
