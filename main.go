package main

import "github.com/GrayChrysTea/coupled-values/cmd"

func main() {
	cmd.Execute()
}
