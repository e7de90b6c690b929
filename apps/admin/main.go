package main

import (
	"context"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	"github.com/trezcool/masomo-calendar/core"
	"github.com/trezcool/masomo-calendar/core/calendar"
	logsvc "github.com/trezcool/masomo-calendar/services/logger"
	"github.com/trezcool/masomo-calendar/storage/database"
	inmemdb "github.com/trezcool/masomo-calendar/storage/database/inmem"
	sqlxrepos "github.com/trezcool/masomo-calendar/storage/database/sqlx"
)

var logger core.Logger

func main() {
	conf := core.NewConfig()
	logger = logsvc.NewRollbarLogger(logsvc.NewZapLogger(conf.Env).Named("admin"), conf)

	// set up DB & repos
	var (
		db   *sqlx.DB
		repo calendar.Repository
	)
	if conf.Database.Engine == "inmem" {
		repo = inmemdb.NewCalendarRepository(inmemdb.Open())
	} else {
		var err error
		db, err = database.Open(context.Background(), conf)
		errAndDie(err)
		defer func() { _ = db.Close() }()
		repo = sqlxrepos.NewCalendarRepository(db)
	}

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	calendar.InitValidators(validate, translator)

	// start CLI
	cli := commandLine{
		svc:    calendar.NewService(repo, conf, validate, translator, nil),
		out:    os.Stdout,
		prodID: "-//" + conf.AppName + "//Calendar//EN",
	}
	if db != nil {
		cli.db = db.DB
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err.Error(), err)
	}
}
