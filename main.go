package main

import "github.com/twiced-technology-gmbh/mdtodo/cmd"

func main() {
	cmd.Execute()
}
