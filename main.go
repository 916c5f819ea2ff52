package main

import "github.com/campushub/campus-hub/cmd/server"

func main() {
	server.NewServer().Run()
}
