package main

import "github.com/arloliu/compkey/cmd/compkey/cmd"

func main() {
	cmd.Execute()
}
