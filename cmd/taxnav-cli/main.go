package main

import "taxnav/cmd/taxnav-cli/cmd"

func main() {
	cmd.Execute()
}
