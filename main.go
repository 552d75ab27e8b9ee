package main

import "test-all/cmd"

func main() {
	cmd.Execute()
}
