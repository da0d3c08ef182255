package main

import "github.com/nebenzu/skillsafe/cmd"

func main() {
	cmd.Execute()
}
