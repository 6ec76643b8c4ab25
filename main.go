package main

import "github.com/alexiusacademia/gopier/cmd"

func main() {
	cmd.Execute()
}
