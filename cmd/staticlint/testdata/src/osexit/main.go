package main

import (
	"fmt"
	"os"
)

func helper() {
	os.Exit(2)
}

func main() {
	fmt.Println("start")
	defer helper()
	os.Exit(1) // want "osexitcheck os.Exit cannot be called in main function of main package"
}
