package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/trezcool/masomo-calendar/core/calendar"
)

var (
	errHelp   = errors.New("help provided")
	errNoDB   = errors.New("migrations need a postgres database (database engine is inmem)")
	errFormat = errors.New("format must be one of: json, ics")
)

type commandLine struct {
	db     *sql.DB // nil with the in-memory engine
	svc    *calendar.Service
	out    io.Writer
	prodID string
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate COMMAND [ARGS] - run a goose command: up, up-by-one, up-to, down, down-to, redo, reset, status, version, fix")
	fmt.Println("  events -user ID -role ROLE -from DATE -to DATE [-format json|ics] - print a user's timeline")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	eventsCmd := flag.NewFlagSet("events", flag.ContinueOnError)
	eventsUser := eventsCmd.String("user", "", "The user's ID.")
	eventsRole := eventsCmd.String("role", string(calendar.RoleStudent), "The user's role: student, teacher or admin.")
	eventsFrom := eventsCmd.String("from", "", "First day of the window (YYYY-MM-DD).")
	eventsTo := eventsCmd.String("to", "", "Last day of the window (YYYY-MM-DD).")
	eventsFormat := eventsCmd.String("format", "json", "Output format: json or ics.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		if cli.db == nil {
			return errNoDB
		}
		return cli.migrate(args[2:])
	case "events":
		if err := eventsCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *eventsUser == "" && calendar.ParseRole(*eventsRole) != calendar.RoleAdmin {
			eventsCmd.Usage()
			return errHelp
		}
		if *eventsFormat != "json" && *eventsFormat != "ics" {
			return errFormat
		}
		caller := calendar.Caller{ID: *eventsUser, Role: calendar.ParseRole(*eventsRole)}
		q := calendar.EventQuery{From: *eventsFrom, To: *eventsTo}
		return cli.events(caller, q, *eventsFormat)
	default:
		cli.printUsage()
		return errHelp
	}
}
