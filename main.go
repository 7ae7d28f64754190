package main

import "github.com/cashrunway/backend/cmd"

func main() {
	cmd.Execute()
}
