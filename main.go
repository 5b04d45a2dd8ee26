package main

import "github.com/wordhope/donation-site/cmd"

func main() {
	cmd.Execute()
}
