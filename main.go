package main

import "github.com/demostore/go-store-admin/app/cmd"

func main() {
	cmd.RunCli()
}
