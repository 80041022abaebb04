package main

import "image-proxy/cmd"

func main() {
	cmd.Execute()
}
