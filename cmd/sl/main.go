package main

import "studentlife/cmd/sl/root"

func main() {
	root.Execute()
}
