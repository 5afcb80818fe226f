package main

import "github.com/sambhavKhanna/gemini-cli/cmd/gemini-cli/cmd"

func main() {
	cmd.Execute()
}
