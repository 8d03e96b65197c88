package main

import "github.com/jlattimer/skillrank/internal/cli"

func main() {
	cli.Execute()
}
