package main

import "github.com/everettroeth/vitalis-sub000/internal/cli"

func main() {
	cli.Execute()
}
