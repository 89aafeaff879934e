package main

import "github.com/criswit/bai2/cmd"

func main() {
	cmd.Execute()
}
