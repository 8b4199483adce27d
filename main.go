package main

import "kopilka/cmd"

func main() {
	cmd.Execute()
}
