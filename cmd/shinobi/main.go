package main

import "shinobi/cmd/shinobi/root"

func main() {
	root.Execute()
}
