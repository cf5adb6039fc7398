// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/crt/cpu"
	"github.com/ezrec/crt/emulator"
)

func main() {
	var sample string
	var trace string
	var output string
	var verbose bool

	flag.StringVar(&sample, "s", "", "Starlark sample expression over 'cycle' and 'x'")
	flag.StringVar(&trace, "t", "", "Cycle trace output")
	flag.StringVar(&output, "o", "-", "Result output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	asm := &cpu.Assembler{Verbose: verbose}

	// Decode each program source, in order.
	var progs []*cpu.Program
	if flag.NArg() == 0 {
		prog, err := asm.Parse(os.Stdin)
		if err != nil {
			log.Fatalf("%v: %v", "-", err)
		}
		progs = append(progs, prog)
	}
	for _, name := range flag.Args() {
		inf, err := os.Open(name)
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
		prog, err := asm.Parse(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
		progs = append(progs, prog)
	}

	emu := emulator.NewEmulator()
	emu.Program = cpu.Join(progs...)
	emu.Verbose = verbose

	err := emu.Signal.SetScript(sample)
	if err != nil {
		log.Fatalf("-s: %v", err)
	}

	if len(trace) != 0 {
		ouf, err := os.Create(trace)
		if err != nil {
			log.Fatalf("%v: %v", trace, err)
		}
		defer ouf.Close()
		tw := bufio.NewWriter(ouf)
		defer tw.Flush()
		emu.Tape.Output = tw
	}

	out := os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	err = emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprintf(out, "%d\n", emu.Signal.Total())
	err = emu.Crt.Render(out)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
