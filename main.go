package main

import "github.com/example/wordslearning/cmd"

func main() {
	cmd.Execute()
}
