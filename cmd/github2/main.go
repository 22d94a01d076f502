package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbukum/github2/command"
	"github.com/kbukum/github2/config"
	"github.com/kbukum/github2/github"
	"github.com/kbukum/github2/logger"
	"github.com/kbukum/github2/schema"
	"github.com/kbukum/github2/version"
)

const usage = `usage: github2 [flags] <command> [args]

commands:
  user <login>                 show a user (empty login: the authenticated user)
  issues <user> <repo> [state] list issues, open by default
  schema <name>                describe a record kind
  ops                          list every operation and its auth mode
  version                      print the build version
`

func main() {
	configFile := flag.String("config", "", "config file (default: searched)")
	envFile := flag.String("env", "", ".env file (default: searched)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, flag.Args(), *configFile, *envFile); err != nil {
		fmt.Fprintf(os.Stderr, "github2: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, args []string, configFile, envFile string) error {
	switch args[0] {
	case "schema":
		if len(args) != 2 {
			return fmt.Errorf("schema takes one name, one of %v", schema.Default.Names())
		}
		s, err := schema.Lookup(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s.Describe())
		return nil
	case "ops":
		printCatalogs(out, github.Catalogs())
		return nil
	case "version":
		fmt.Fprintln(out, version.Get())
		return nil
	}

	var opts []config.LoaderOption
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	if envFile != "" {
		opts = append(opts, config.WithEnvFile(envFile))
	}
	cfg, err := config.Load(config.DefaultName, opts...)
	if err != nil {
		return err
	}
	client, err := github.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Close(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown failed", logger.Fields(logger.FieldError, err.Error()))
		}
	}()

	switch args[0] {
	case "user":
		login := ""
		if len(args) > 1 {
			login = args[1]
		}
		user, err := client.Users.Show(ctx, login)
		if err != nil {
			return err
		}
		printRecord(out, user.Record)
	case "issues":
		if len(args) < 3 {
			return fmt.Errorf("issues takes <user> <repo> [state]")
		}
		state := ""
		if len(args) > 3 {
			state = args[3]
		}
		issues, err := client.Issues.List(ctx, args[1], args[2], state)
		if err != nil {
			return err
		}
		for i, issue := range issues {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printRecord(out, issue.Record)
		}
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

func printRecord(out io.Writer, r *schema.Record) {
	for name, value := range r.All() {
		if t, ok := value.(time.Time); ok {
			value = t.Format(time.DateTime)
		}
		fmt.Fprintf(out, "%-24s %v\n", name, value)
	}
}

func printCatalogs(out io.Writer, catalogs []*command.Catalog) {
	for _, cat := range catalogs {
		fmt.Fprintf(out, "%s\n", cat.Domain())
		for _, op := range cat.Operations() {
			fmt.Fprintf(out, "  %-10s %-8s %s\n", op.Name, op.Auth, op.Doc)
		}
	}
}
