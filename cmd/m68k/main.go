// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/m68k/emulator"
)

func main() {
	var input string
	var strict bool
	var dump bool
	var verbose bool

	flag.StringVar(&input, "i", "-", "Assembly input")
	flag.BoolVar(&strict, "e", false, "Stop at the first error")
	flag.BoolVar(&dump, "d", false, "Dump registers and flags on exit")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var inf io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer f.Close()
		inf = f
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	scanner := bufio.NewScanner(inf)
	for scanner.Scan() {
		report, err := emu.Interpret(scanner.Text())
		if err != nil {
			if strict {
				log.Fatal(err)
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if len(report) != 0 {
			fmt.Println(report)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	if dump {
		fmt.Print(emu.String())
	}
}
