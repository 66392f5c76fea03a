package main

import "github.com/strewnlab/meteorscope/cmd"

func main() {
	cmd.Execute()
}
