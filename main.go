package main

import "github.com/coldscan/coldscan/cmd/coldscan"

func main() { coldscan.Execute() }
