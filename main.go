package main

import "docmap/cmd"

func main() {
	cmd.Execute()
}
