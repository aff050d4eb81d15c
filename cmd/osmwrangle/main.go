package main

import (
	"fmt"
	"os"

	"github.com/osmtools/osmwrangle"
	"github.com/osmtools/osmwrangle/carriers"
	"github.com/osmtools/osmwrangle/config"
	"github.com/osmtools/osmwrangle/logging"
	"github.com/osmtools/osmwrangle/process"
)

var log = logging.NewLogger("")

func printCmds() {
	fmt.Fprintf(os.Stderr, "Usage: %s COMMAND [args]\n\n", os.Args[0])
	fmt.Println("Available commands:")
	fmt.Println("\tshape")
	fmt.Println("\tcarriers")
	fmt.Println("\tversion")
}

func main() {
	if len(os.Args) <= 1 {
		printCmds()
		logging.Shutdown()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "shape":
		opts := config.ParseShape(os.Args[2:])
		docs, err := process.Run(opts)
		if err != nil {
			log.Fatalf("shaping failed: %s", err)
		}
		log.Printf("wrote %d documents to %s", len(docs), opts.Output)
	case "carriers":
		opts := config.ParseCarriers(os.Args[2:])
		codes, err := carriers.ExtractFile(opts.Input)
		if err != nil {
			log.Fatalf("extracting carriers failed: %s", err)
		}
		for _, code := range codes {
			fmt.Println(code)
		}
	case "version":
		fmt.Println(osmwrangle.Version)
		os.Exit(0)
	default:
		printCmds()
		log.Fatalf("invalid command: '%s'", os.Args[1])
	}
	logging.Shutdown()
	os.Exit(0)
}
