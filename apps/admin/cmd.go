package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	"github.com/aasim911-prog/department/core/grading"
	"github.com/aasim911-prog/department/core/user"
	"github.com/aasim911-prog/department/storage/database"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	repos      *database.Repositories
	usrSvc     *user.Service
	gradingSvc *grading.Service
	validate   *validator.Validate
	translator ut.Translator
	out        io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS...]                       - run a goose migration command (postgres only)")
	fmt.Fprintln(cli.out, "  adduser -role ROLE -name NAME -department DEPT [-email EMAIL] [-studentid ID] [-semester N]")
	fmt.Fprintln(cli.out, "                                                  - register a user; the password is prompted next")
	fmt.Fprintln(cli.out, "  resetpassword -identifier EMAIL|STUDENT_ID      - reset user's password")
	fmt.Fprintln(cli.out, "  transcript -student STUDENT_ID                  - print a student's transcript as JSON")
}

func (cli *commandLine) readPassword() (string, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	return string(pwd), err
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ContinueOnError)
	addUserCmd.SetOutput(cli.out)
	addUserRole := addUserCmd.String("role", "", "teacher or student.")
	addUserName := addUserCmd.String("name", "", "The user's full name.")
	addUserDept := addUserCmd.String("department", "", "The user's department.")
	addUserEmail := addUserCmd.String("email", "", "The teacher's email.")
	addUserStudentID := addUserCmd.String("studentid", "", "The student's ID.")
	addUserSemester := addUserCmd.Int("semester", 0, "The student's current semester.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ContinueOnError)
	resetPasswordCmd.SetOutput(cli.out)
	resetPasswordID := resetPasswordCmd.String("identifier", "", "The teacher's email or the student's ID. The password will be prompted next.")

	transcriptCmd := flag.NewFlagSet("transcript", flag.ContinueOnError)
	transcriptCmd.SetOutput(cli.out)
	transcriptStudent := transcriptCmd.String("student", "", "The student's ID.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])

	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *addUserRole == "" || *addUserName == "" {
			addUserCmd.Usage()
			return errHelp
		}
		pwd, err := cli.readPassword()
		if err != nil {
			return err
		}
		nu := user.NewUser{
			Name:       *addUserName,
			Email:      *addUserEmail,
			StudentID:  *addUserStudentID,
			Role:       *addUserRole,
			Department: *addUserDept,
			Password:   pwd,
		}
		if *addUserSemester != 0 {
			nu.Semester = addUserSemester
		}
		return cli.addUser(nu)

	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *resetPasswordID == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, err := cli.readPassword()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPasswordID, pwd)

	case "transcript":
		if err := transcriptCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *transcriptStudent == "" {
			transcriptCmd.Usage()
			return errHelp
		}
		return cli.transcript(*transcriptStudent)

	default:
		cli.printUsage()
		return errHelp
	}
}
