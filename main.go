package main

import "github.com/pharmalife/timetracker/cmd"

func main() {
	cmd.Execute()
}
