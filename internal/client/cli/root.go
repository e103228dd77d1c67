package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if a.userEmail != "" {
		s = a.userEmail
	} else if a.isLoggedIn() {
		s = "signed in"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: list, add, update <id>, delete <id>, whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, exit")
	}
}

func (a *App) reportError(err error) {
	fmt.Fprintf(a.out, "Error: %s\n", err.Error())
}

// Run is the interactive loop: it reads one command per line and dispatches
// until EOF or an exit command.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Notes CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "notes %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			a.printHelp()
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			a.Logout()
		case "whoami":
			err = a.WhoAmI(ctx)
		case "list", "l":
			err = a.list(ctx)
		case "add":
			err = a.addNote(ctx)
		case "update":
			err = a.updateNote(ctx, args)
		case "delete":
			err = a.deleteNote(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintf(a.out, "Unknown command: %s\n", cmd)
		}

		if err != nil {
			a.reportError(err)
		}
	}
}
