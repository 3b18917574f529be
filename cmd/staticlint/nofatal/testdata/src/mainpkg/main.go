package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) > 2 {
		log.Fatal("too many arguments")
	}
	os.Exit(0)
}
