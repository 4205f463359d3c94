package main

import "github.com/gridrival/season-manager-go/cmd"

func main() {
	cmd.Execute()
}
