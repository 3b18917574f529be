package a

import (
	"errors"
	"log"
	"os"
)

func poll() error {
	return errors.New("unreachable")
}

func handle() {
	if err := poll(); err != nil {
		log.Fatal(err) // want `call to log.Fatal outside package main`
	}
	log.Panicf("bad state: %d", 1) // want `call to log.Panicf outside package main`

	l := log.New(os.Stderr, "", 0)
	l.Fatalln("stop") // want `call to log.Fatalln outside package main`
	l.Println("fine")

	os.Exit(1) // want `call to os.Exit outside package main`
}

func ok() error {
	log.Println("polled")
	return poll()
}
