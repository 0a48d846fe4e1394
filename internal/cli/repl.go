package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests use a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	List(ctx context.Context) error
	Submit(ctx context.Context) error
	Mine(ctx context.Context) error
	Favorites(ctx context.Context) error
	Fav(ctx context.Context, storyID string) error
	Unfav(ctx context.Context, storyID string) error
	Delete(ctx context.Context, storyID string) error
	Logout(ctx context.Context) error
}

// runREPL reads a line, takes the first token as the command, and
// dispatches to 'a'. Commands taking a story id accept it as a second
// token; handlers prompt when it is missing. The loop exits on EOF or
// "exit"/"quit". Handler errors are already reported by the handlers, so
// they are discarded here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hos (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (s)tories, submit, mine, favorites, fav <id>, unfav <id>, delete <id>, logout, exit")
			} else {
				printlnFn("Available commands: (s)tories, login, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "s", "stories":
			_ = a.List(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "mine":
			_ = a.Mine(ctx)

		case "favorites":
			_ = a.Favorites(ctx)

		case "fav":
			_ = a.Fav(ctx, arg)

		case "unfav":
			_ = a.Unfav(ctx, arg)

		case "delete":
			_ = a.Delete(ctx, arg)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
