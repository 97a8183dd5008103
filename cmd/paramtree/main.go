package main

import (
	"go.brendoncarroll.net/star"

	"paramtree.dev/paramtree/paramcmd"
)

func main() {
	star.Main(paramcmd.Root())
}
