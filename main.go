package main

import "github/chapool/hdderive/cmd"

func main() {
	cmd.Execute()
}
