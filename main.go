package main

import "github.com/narasux/bloghub/cmd"

func main() {
	cmd.Execute()
}
