package main

import (
	"context"
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/aasim911-prog/department/apps/api/echo"
	"github.com/aasim911-prog/department/core"
	"github.com/aasim911-prog/department/core/grading"
	"github.com/aasim911-prog/department/core/mark"
	"github.com/aasim911-prog/department/core/subject"
	"github.com/aasim911-prog/department/core/user"
	logsvc "github.com/aasim911-prog/department/services/logger"
	"github.com/aasim911-prog/department/storage/database"
)

type (
	DBLoggerParam struct {
		dig.In
		Logger core.Logger `name:"dbLogger"`
	}

	ServerParams struct {
		dig.In
		Conf       *core.Config
		Logger     core.Logger
		UserSvc    *user.Service
		SubjectSvc *subject.Service
		MarkSvc    *mark.Service
		GradingSvc *grading.Service
		Validate   *validator.Validate
		Translator ut.Translator
	}
)

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	return logsvc.NewRollbarLogger(stdLogger, conf)
}

func newDBLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	return logsvc.NewRollbarLogger(stdLogger, conf)
}

// newRepositories opens the configured storage engine and, for postgres, migrates it.
func newRepositories(conf *core.Config, loggerParam DBLoggerParam) *database.Repositories {
	logger := loggerParam.Logger

	repos, err := database.OpenRepositories(context.Background(), conf, logger)
	if err != nil {
		logger.Fatal("setting up database: "+err.Error(), err)
	}
	if repos.SQL != nil {
		if err = database.Migrate(repos.SQL.DB); err != nil {
			logger.Fatal("migrating database: "+err.Error(), err)
		}
	}
	return repos
}

func newUserService(repos *database.Repositories) *user.Service {
	return user.NewService(repos.Users)
}

func newSubjectService(repos *database.Repositories) *subject.Service {
	return subject.NewService(repos.Subjects)
}

func newMarkService(repos *database.Repositories) *mark.Service {
	return mark.NewService(repos.Marks)
}

func newGradingService(repos *database.Repositories) *grading.Service {
	return grading.NewService(grading.NewRepositoryStore(repos.Users, repos.Subjects, repos.Marks))
}

func newValidator(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	return validate
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

func newServer(p ServerParams) *echoapi.Server {
	return echoapi.NewServer(echoapi.Deps{
		Conf:       p.Conf,
		Logger:     p.Logger,
		UserSvc:    p.UserSvc,
		SubjectSvc: p.SubjectSvc,
		MarkSvc:    p.MarkSvc,
		GradingSvc: p.GradingSvc,
		Validate:   p.Validate,
		Translator: p.Translator,
	})
}

// newContainer returns a new dependency injection dig.Container
func newContainer() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newRepositories))
	must(c.Provide(newUserService))
	must(c.Provide(newSubjectService))
	must(c.Provide(newMarkService))
	must(c.Provide(newGradingService))
	must(c.Provide(newTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
