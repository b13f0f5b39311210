package main

import "bubble/cmd"

func main() {
	cmd.Execute()
}
