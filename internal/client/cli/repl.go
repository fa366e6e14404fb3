package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Refresh(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	Status() string
}

// runREPL starts a simple read-eval-print loop for the registry CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	help           - show available commands
//	list | l       - print the cached user list
//	refresh        - reload the list from the server
//	add            - register a user (interactive form)
//	delete <id>    - remove a user (asks for confirmation)
//	exit | quit    - leave the program
//
// Any errors returned by command handlers are ignored here; handlers update
// the notification state and report to the user themselves. This keeps the
// REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("registro> %s > ", a.Status()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, refresh, add, delete <id>, exit")

		case "l", "list":
			_ = a.List(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "add":
			_ = a.Add(ctx)

		case "delete":
			if len(parts) < 2 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, parts[1])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
