package main

import "plannerview/internal/cli"

func main() {
	cli.Execute()
}
