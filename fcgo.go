package main

import "github.com/serverlessresearch/fcgo/cmd"

func main() {
	cmd.Execute()
}
