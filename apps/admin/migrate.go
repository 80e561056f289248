package main

import (
	"database/sql"

	"github.com/aasim911-prog/department/storage/database"
)

var gooseRunFunc = database.RunMigrations // mockable

func (cli *commandLine) migrate(args []string) error {
	var db *sql.DB
	if cli.repos != nil && cli.repos.SQL != nil {
		db = cli.repos.SQL.DB
	}
	return gooseRunFunc(args[0], db, args[1:]...)
}
