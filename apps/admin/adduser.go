package main

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/aasim911-prog/department/core"
	"github.com/aasim911-prog/department/core/user"
)

// addUser registers a user the way the register endpoint does.
func (cli *commandLine) addUser(nu user.NewUser) error {
	ctx := context.Background()
	if err := nu.Validate(ctx, cli.validate, cli.usrSvc); err != nil {
		return cli.describeValidation(err)
	}
	usr, err := cli.usrSvc.Create(ctx, nu)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s %q registered with ID %s\n", usr.Role, usr.Name, usr.ID)
	return nil
}

// describeValidation flattens validation errors into a single line.
func (cli *commandLine) describeValidation(err error) error {
	switch vErr := errors.Cause(err).(type) {
	case validator.ValidationErrors:
		msg := "invalid user:"
		for _, fe := range vErr {
			msg += fmt.Sprintf(" %s: %s;", fe.Field(), fe.Translate(cli.translator))
		}
		return errors.New(msg)
	case *core.ValidationError:
		return errors.Wrap(vErr, "invalid user")
	}
	return err
}
