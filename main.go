package main

import "github.com/jsphweid/chordanalyser/cmd"

func main() {
	cmd.Execute()
}
