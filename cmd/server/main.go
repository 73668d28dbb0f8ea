package main

import "library-catalog/cmd/server/cmd"

func main() {
	cmd.Execute()
}
