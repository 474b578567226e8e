package main

import "github.com/deploymenttheory/go-afp/cmd"

func main() {
	cmd.Execute()
}
