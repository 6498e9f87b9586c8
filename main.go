package main

import "github.com/aicred/aicred/cmd/aicred"

func main() { aicred.Execute() }
