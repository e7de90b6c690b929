package dig_container

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"
	"go.uber.org/zap"

	echoapi "github.com/trezcool/masomo-calendar/apps/api/echo"
	"github.com/trezcool/masomo-calendar/core"
	"github.com/trezcool/masomo-calendar/core/calendar"
	logsvc "github.com/trezcool/masomo-calendar/services/logger"
	metricsvc "github.com/trezcool/masomo-calendar/services/metrics"
	"github.com/trezcool/masomo-calendar/storage/database"
	inmemdb "github.com/trezcool/masomo-calendar/storage/database/inmem"
	sqlxrepos "github.com/trezcool/masomo-calendar/storage/database/sqlx"
)

const engineInMem = "inmem"

type DBLoggerParam struct {
	dig.In
	Logger core.Logger `name:"dbLogger"`
}

func newZapLogger(conf *core.Config) *zap.Logger {
	return logsvc.NewZapLogger(conf.Env)
}

func newLogger(zl *zap.Logger, conf *core.Config) core.Logger {
	return logsvc.NewRollbarLogger(zl.Named("api"), conf)
}

func newDBLogger(zl *zap.Logger, conf *core.Config) core.Logger {
	return logsvc.NewRollbarLogger(zl.Named("db"), conf)
}

// newDB returns nil when the in-memory engine is configured.
func newDB(conf *core.Config, loggerParam DBLoggerParam) *sqlx.DB {
	if conf.Database.Engine == engineInMem {
		return nil
	}

	setUp := func(ctx context.Context) (*sqlx.DB, error) {
		if err := database.CreateIfNotExist(ctx, conf); err != nil {
			return nil, err
		}

		db, err := database.Open(ctx, conf)
		if err != nil {
			return nil, err
		}

		if err = database.Migrate(ctx, db.DB); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	}

	db, err := setUp(context.Background())
	if err != nil {
		loggerParam.Logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	return db
}

func newRepository(conf *core.Config, db *sqlx.DB) calendar.Repository {
	if conf.Database.Engine == engineInMem {
		return inmemdb.NewCalendarRepository(inmemdb.Open())
	}
	return sqlxrepos.NewCalendarRepository(db)
}

func newRecorder(conf *core.Config) calendar.Recorder {
	namespace := strings.ReplaceAll(core.CleanString(conf.AppName, true /* lower */), " ", "_")
	return metricsvc.NewMetrics(namespace, prometheus.DefaultRegisterer)
}

func newServer(conf *core.Config, logger core.Logger, svc *calendar.Service) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:        conf,
		Logger:      logger,
		CalendarSvc: svc,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newZapLogger))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newDB))
	must(c.Provide(newRepository))
	must(c.Provide(newRecorder))
	must(c.Provide(validator.New))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(calendar.NewService))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
