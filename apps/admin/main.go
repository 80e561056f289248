package main

import (
	"context"
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/aasim911-prog/department/core"
	"github.com/aasim911-prog/department/core/grading"
	"github.com/aasim911-prog/department/core/user"
	logsvc "github.com/aasim911-prog/department/services/logger"
	"github.com/aasim911-prog/department/storage/database"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)

	// set up DB
	repos, err := database.OpenRepositories(context.Background(), conf, logger)
	if err != nil {
		logger.Fatal("setting up database: "+err.Error(), err)
	}

	_en := en.New()
	translator, _ := ut.New(_en, _en).GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	// start CLI
	cli := commandLine{
		repos:      repos,
		usrSvc:     user.NewService(repos.Users),
		gradingSvc: grading.NewService(grading.NewRepositoryStore(repos.Users, repos.Subjects, repos.Marks)),
		validate:   validate,
		translator: translator,
		out:        os.Stdout,
	}
	err = cli.run(os.Args)
	_ = repos.Close()
	if err != nil {
		if err != errHelp {
			logger.Error("admin command failed: "+err.Error(), err)
		}
		os.Exit(1)
	}
}
