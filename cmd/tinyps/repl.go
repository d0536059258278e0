package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"nickandperla.net/tinyps/pkg/tinyps"
)

// runREPL reads programs line by line from a terminal, or executes all
// of piped stdin as one program. The loop continues after runtime
// errors; state may be partially mutated.
func runREPL(rt *tinyps.Runtime) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			return
		}
		runSource(rt, string(input))
		return
	}

	fmt.Println("tinyps interpreter")
	fmt.Println("Type 'quit' or Ctrl+D to exit.")

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("PS> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if runSource(rt, line) {
			return
		}
	}
}
