package main

import "github.com/MarkEWaite/analysis-model/cmd"

func main() {
	cmd.Execute()
}
