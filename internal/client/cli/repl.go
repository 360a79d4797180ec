package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// lineReader supplies one line of input per call. Production uses readline;
// tests use a slice-backed stub.
type lineReader interface {
	ReadLine(prompt string) (string, error)
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Catalog(ctx context.Context) error
	ShowCourse(ctx context.Context, courseID int64) error
	Enroll(ctx context.Context, courseID int64) error
	MyCourses(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Achievements(ctx context.Context) error
	AddCourse(ctx context.Context) error
}

// runREPL reads lines from rl, parses the first token as the command, and
// dispatches to methods on a. Unknown commands are reported back. The loop
// exits on read error (EOF, interrupt) or when the user types "exit" or
// "quit".
//
// Command handlers report their own failures to the user; errors returned
// here are ignored to keep the loop resilient.
func runREPL(ctx context.Context, a execIface, statusFn func() string, rl lineReader) {
	for {
		line, err := rl.ReadLine(fmt.Sprintf("edu> %s > ", statusFn()))
		if err != nil {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: catalog, course <id>, enroll <id>, mycourses, profile, edit, achievements, addcourse, logout, exit")
			} else {
				printlnFn("Available commands: register, login, catalog, course <id>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "catalog", "courses":
			_ = a.Catalog(ctx)

		case "course":
			if id, ok := parseID(parts, "course <id>"); ok {
				_ = a.ShowCourse(ctx, id)
			}

		case "enroll":
			if id, ok := parseID(parts, "enroll <id>"); ok {
				_ = a.Enroll(ctx, id)
			}

		case "mycourses", "my":
			_ = a.MyCourses(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "achievements", "ach":
			_ = a.Achievements(ctx)

		case "addcourse":
			_ = a.AddCourse(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func parseID(parts []string, usage string) (int64, bool) {
	if len(parts) < 2 {
		printlnFn("usage: " + usage)
		return 0, false
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		printlnFn("usage: " + usage)
		return 0, false
	}
	return id, true
}
