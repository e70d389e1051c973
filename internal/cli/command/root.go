package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/mergington-go/internal/cli/connection"
	"github.com/yndnr/mergington-go/internal/cli/output"
	"github.com/yndnr/mergington-go/internal/infra/buildinfo"
	"github.com/yndnr/mergington-go/internal/infra/tlsroots"
)

// DefaultServer is the address of a locally started mergington-server.
const DefaultServer = "http://127.0.0.1:8000"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "mergington-cli",
		Usage:   "Mergington High School activity enrollment client",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			LoginCommand(),
			LogoutCommand(),
			WhoAmICommand(),
			ActivitiesCommand(),
		},
		Before: func(c *cli.Context) error {
			_, err := output.ParseFormat(c.String("output"))
			return err
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "server address (e.g., http://127.0.0.1:8000)",
			EnvVars: []string{"MERGINGTON_SERVER"},
			Value:   DefaultServer,
		},
		&cli.StringFlag{
			Name:    "token",
			Aliases: []string{"t"},
			Usage:   "teacher session token from `login`",
			EnvVars: []string{"MERGINGTON_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: table, json, yaml",
			Value:   string(output.FormatTable),
		},
		&cli.StringFlag{
			Name:    "ca-cert",
			Usage:   "PEM file with an extra CA to trust for https servers",
			EnvVars: []string{"MERGINGTON_CA_CERT"},
		},
		&cli.BoolFlag{
			Name:  "insecure",
			Usage: "skip TLS certificate verification",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "request timeout",
			Value: 30 * time.Second,
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Server   string
	Token    string
	Output   output.Format
	CACert   string
	Insecure bool
	Timeout  time.Duration
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	format, _ := output.ParseFormat(c.String("output"))
	return &GlobalFlags{
		Server:   c.String("server"),
		Token:    c.String("token"),
		Output:   format,
		CACert:   c.String("ca-cert"),
		Insecure: c.Bool("insecure"),
		Timeout:  c.Duration("timeout"),
	}
}

// NewClient builds the HTTP client from the global flags.
func NewClient(c *cli.Context) (*connection.HTTPClient, error) {
	flags := ParseGlobalFlags(c)

	opts := []connection.Option{
		connection.WithToken(flags.Token),
		connection.WithUserAgent("mergington-cli/" + buildinfo.Get().Version),
	}
	if flags.Timeout > 0 {
		opts = append(opts, connection.WithTimeout(flags.Timeout))
	}
	if flags.CACert != "" || flags.Insecure {
		tlsCfg, err := tlsroots.ClientConfig(flags.CACert, flags.Insecure)
		if err != nil {
			return nil, err
		}
		opts = append(opts, connection.WithTLSConfig(tlsCfg))
	}

	return connection.NewHTTPClient(flags.Server, opts...), nil
}

// requireToken fails early for commands that only make sense as a teacher.
func requireToken(c *cli.Context) error {
	if c.String("token") == "" {
		return fmt.Errorf("no token: run `mergington-cli login` and export MERGINGTON_TOKEN")
	}
	return nil
}

// render writes data in the selected output format.
func render(c *cli.Context, data any) error {
	return output.NewFormatter(ParseGlobalFlags(c).Output).Format(c.App.Writer, data)
}

func requestContext(c *cli.Context) (context.Context, context.CancelFunc) {
	parent := c.Context
	if parent == nil {
		parent = context.Background()
	}
	if d := ParseGlobalFlags(c).Timeout; d > 0 {
		return context.WithTimeout(parent, d)
	}
	return context.WithCancel(parent)
}
