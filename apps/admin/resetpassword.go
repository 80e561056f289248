package main

import (
	"context"
)

func (cli *commandLine) resetPassword(identifier, pwd string) error {
	ctx := context.Background()
	usr, err := cli.usrSvc.GetByIdentifier(ctx, identifier)
	if err != nil {
		return err
	}
	_, err = cli.usrSvc.SetPassword(ctx, usr, pwd)
	return err
}
