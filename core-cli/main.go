package main

import (
	"fmt"
	"os"
)

func main() { os.Exit(_main()) }
func _main() (ret int) {
	Parse()
	// Attempt to run the completion program.
	if Completion.Complete() {
		// The completion program ran, so just return.
		return 0
	}
	if err := Validate(); err != nil {
		fmt.Println(err)
		return 1
	}

	switch cmd {
	case "transactions":
		if err := listTransactions(); err != nil {
			fmt.Println(err)
			return 1
		}
	case "consumer":
		if err := consumer(); err != nil {
			fmt.Println(err)
			return 1
		}
	case "submit":
		if err := submit(); err != nil {
			fmt.Println(err)
			return 1
		}
	default:
		usage()
	}

	return 0
}

func usage() {
	fmt.Println(
		"usage: core-cli [transactions|consumer (create|get|update)|submit]")
}
