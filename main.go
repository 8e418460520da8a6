package main

import "blobwar/cli"

func main() {
	cli.Execute()
}
