package main

import "github.com/mblarsen/wsl-notify/cmd"

func main() {
	cmd.Execute()
}
