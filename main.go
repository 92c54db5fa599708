package main

import "rhythmdeck/cmd"

func main() {
	cmd.Execute()
}
