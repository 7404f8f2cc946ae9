package main

import "github.com/regexcat/regexcat/cmd"

func main() {
	cmd.Execute()
}
