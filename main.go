package main

import "playconf/cmd"

func main() {
	cmd.Execute()
}
