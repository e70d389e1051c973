package command

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/mergington-go/internal/cli/connection"
)

// LoginCommand returns the login command.
func LoginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Log in as a teacher and print the session token",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "username",
				Aliases:  []string{"u"},
				Usage:    "teacher username",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "password",
				Aliases:  []string{"p"},
				Usage:    "teacher password",
				EnvVars:  []string{"MERGINGTON_PASSWORD"},
				Required: true,
			},
		},
		Action: login,
	}
}

func login(c *cli.Context) error {
	client, err := NewClient(c)
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := client.Post(ctx, "/auth/login", url.Values{
		"username": {c.String("username")},
		"password": {c.String("password")},
	})
	if err != nil {
		return err
	}

	var result loginResult
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}
	return render(c, result)
}

// LogoutCommand returns the logout command.
func LogoutCommand() *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "Revoke the current session token",
		Action: logout,
	}
}

func logout(c *cli.Context) error {
	if err := requireToken(c); err != nil {
		return err
	}
	client, err := NewClient(c)
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := client.Post(ctx, "/auth/logout", nil)
	if err != nil {
		return err
	}

	var result messageResult
	if err := connection.ParseResponse(resp, &result); err != nil {
		if connection.IsCode(err, "MH-AUTH-4011") {
			return fmt.Errorf("token is no longer valid, nothing to log out: %w", err)
		}
		return err
	}
	return render(c, result)
}

// WhoAmICommand returns the whoami command.
func WhoAmICommand() *cli.Command {
	return &cli.Command{
		Name:   "whoami",
		Usage:  "Show the teacher behind the current token",
		Action: whoami,
	}
}

func whoami(c *cli.Context) error {
	client, err := NewClient(c)
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := client.Get(ctx, "/auth/me", nil)
	if err != nil {
		return err
	}

	var result whoAmIResult
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}
	return render(c, result)
}
