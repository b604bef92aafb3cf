package main

import "exdb/cmd"

func main() {
	cmd.Execute()
}
