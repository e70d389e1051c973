package command

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/mergington-go/internal/cli/connection"
)

// ActivitiesCommand returns the activities subcommand group.
func ActivitiesCommand() *cli.Command {
	return &cli.Command{
		Name:    "activities",
		Aliases: []string{"act"},
		Usage:   "List activities and manage enrollment",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all activities",
				Action: activitiesList,
			},
			{
				Name:      "show",
				Usage:     "Show one activity with its participants",
				ArgsUsage: "ACTIVITY",
				Action:    activitiesShow,
			},
			{
				Name:      "signup",
				Usage:     "Sign a student up for an activity",
				ArgsUsage: "ACTIVITY EMAIL",
				Action:    activitiesSignup,
			},
			{
				Name:      "unregister",
				Usage:     "Remove a student from an activity (teachers only)",
				ArgsUsage: "ACTIVITY EMAIL",
				Action:    activitiesUnregister,
			},
		},
	}
}

func fetchActivities(c *cli.Context) (activityList, error) {
	client, err := NewClient(c)
	if err != nil {
		return nil, err
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := client.Get(ctx, "/activities", nil)
	if err != nil {
		return nil, err
	}

	var list activityList
	if err := connection.ParseResponse(resp, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func activitiesList(c *cli.Context) error {
	list, err := fetchActivities(c)
	if err != nil {
		return err
	}
	return render(c, list)
}

func activitiesShow(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("activity name required")
	}

	client, err := NewClient(c)
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := client.Get(ctx, connection.ActivityPath(name, ""), nil)
	if err != nil {
		return err
	}
	var a activity
	if err := connection.ParseResponse(resp, &a); err != nil {
		return err
	}
	return render(c, newActivityDetail(name, a))
}

func enrollmentArgs(c *cli.Context) (string, string, error) {
	if c.Args().Len() != 2 {
		return "", "", fmt.Errorf("usage: %s ACTIVITY EMAIL", c.Command.Name)
	}
	return c.Args().Get(0), c.Args().Get(1), nil
}

func activitiesSignup(c *cli.Context) error {
	name, email, err := enrollmentArgs(c)
	if err != nil {
		return err
	}
	client, err := NewClient(c)
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := client.Post(ctx, connection.ActivityPath(name, "signup"), url.Values{"email": {email}})
	if err != nil {
		return err
	}

	var result messageResult
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}
	return render(c, result)
}

func activitiesUnregister(c *cli.Context) error {
	name, email, err := enrollmentArgs(c)
	if err != nil {
		return err
	}
	if err := requireToken(c); err != nil {
		return err
	}
	client, err := NewClient(c)
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := client.Delete(ctx, connection.ActivityPath(name, "unregister"), url.Values{"email": {email}})
	if err != nil {
		return err
	}

	var result messageResult
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}
	return render(c, result)
}
