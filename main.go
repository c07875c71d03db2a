package main

import "github.com/zhubert/toolplan/cmd"

func main() {
	cmd.Execute()
}
