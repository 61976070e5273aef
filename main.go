package main

import "contacts-be/cmd"

func main() {
	cmd.Execute()
}
