package main

import "github.com/metal-toolbox/cookiejar/cmd"

func main() {
	cmd.Execute()
}
