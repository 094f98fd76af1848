package main

import (
	"github.com/shouni/commedia-index/cmd"
)

func main() {
	cmd.Execute()
}
