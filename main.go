package main

import "github.com/adelicia-js/milestone-monitor-sub001/cmd"

func main() {
	cmd.Execute()
}
