package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/trezcool/masomo-calendar/core/calendar"
)

func (cli *commandLine) events(caller calendar.Caller, q calendar.EventQuery, format string) error {
	events, err := cli.svc.Events(context.Background(), caller, q)
	if err != nil {
		return err
	}

	if format == "ics" {
		return calendar.WriteICal(cli.out, events, cli.prodID, time.Now())
	}
	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	return enc.Encode(events)
}
