package main

import (
	"github.com/yeisme/projscope/cmd"
)

func main() {
	cmd.Execute()
}
