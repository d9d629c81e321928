package main

import "chaimport/cmd"

func main() {
	cmd.Execute()
}
