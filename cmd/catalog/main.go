package main

import "github.com/openswoop/catalog/cmd"

func main() {
	cmd.Execute()
}
