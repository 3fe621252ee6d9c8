package main

import (
	"github.com/layr-arb/layr/layrcli"
	"github.com/layr-arb/layr/lib/xmain"
)

func main() {
	xmain.Main(layrcli.Run)
}
