package main

import "china-division/cmd"

func main() {
	cmd.Execute()
}
