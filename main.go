package main

import "fastcat.org/go/matchpick/cmd"

func main() {
	cmd.Main()
}
