package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"github.com/labstack/echo-contrib/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/bzimmer/ftracker"
)

func config(c *cli.Context) (*ftracker.Config, error) {
	var err error
	var val []byte
	name := ftracker.DefaultConfig
	switch c.IsSet("config") {
	case true:
		name = c.String("config")
		log.Info().Str("file", name).Msg("config")
		var fp *os.File
		fp, err = os.Open(name)
		if err != nil {
			return nil, err
		}
		defer fp.Close()
		val, err = io.ReadAll(fp)
		if err != nil {
			return nil, err
		}
	case false:
		log.Info().Str("file", name).Msg("config")
		val, err = ftracker.Content.ReadFile(name)
		if err != nil {
			return nil, err
		}
	}
	return ftracker.NewConfig(name, val)
}

func summary(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("missing workout type")
	}
	data := make([]float64, 0, c.NArg()-1)
	for _, arg := range c.Args().Tail() {
		val, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", arg, err)
		}
		data = append(data, val)
	}
	w, err := ftracker.Package{Type: c.Args().First(), Data: data}.Workout()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, w.Summary().Message())
	return err
}

func run(c *cli.Context) error {
	cfg, err := config(c)
	if err != nil {
		return err
	}
	sums, err := ftracker.Process(cfg.Packages)
	if err != nil {
		return err
	}
	for _, sum := range sums {
		fmt.Fprintln(c.App.Writer, sum)
	}
	if c.Bool("totals") {
		for _, t := range ftracker.Tally(sums) {
			fmt.Fprintf(c.App.Writer, "Total %s: %d workouts; Duration: %.3f h.; Distance: %.3f km; Calories burned: %.3f.\n",
				t.Type, t.Workouts, t.Duration, t.Distance, t.Calories)
		}
	}
	return nil
}

func kinds(c *cli.Context) error {
	for _, k := range ftracker.Kinds() {
		fmt.Fprintf(c.App.Writer, "%s\t%s\t%d\n", k, k.Name(), k.Arity())
	}
	return nil
}

func newEngine(c *cli.Context) (*echo.Echo, error) {
	u, err := url.Parse(c.String("base-url"))
	if err != nil {
		return nil, err
	}
	engine := ftracker.NewEngine(u.Path)
	if c.Bool("metrics") {
		prometheus.NewPrometheus("ftracker", nil).Use(engine)
	}
	return engine, nil
}

func serve(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	u, err := url.Parse(c.String("base-url"))
	if err != nil {
		return err
	}
	_, port, _ := net.SplitHostPort(u.Host)
	address := fmt.Sprintf("0.0.0.0:%s", port)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		log.Info().Str("address", address).Msg("serving")
		if err := engine.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	grp.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return engine.Shutdown(sctx)
	})
	return grp.Wait()
}

func function(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	log.Info().Msg("running function")
	el := echoadapter.New(engine)
	lambda.Start(ftracker.LambdaHandler(el))
	return nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "ftracker",
		HelpName: "ftracker",
		Usage:    "Fitness tracker",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Value:   false,
				Usage:   "enable debug logging",
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			log.Error().Err(err).Msg(c.App.Name)
		},
		Before: func(c *cli.Context) error {
			level := zerolog.InfoLevel
			if c.Bool("verbose") {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			zerolog.DurationFieldUnit = time.Millisecond
			zerolog.DurationFieldInteger = false
			log.Logger = log.Output(
				zerolog.ConsoleWriter{
					Out:        c.App.ErrWriter,
					NoColor:    false,
					TimeFormat: time.RFC3339,
				},
			)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "summary",
				Usage:     "Summarize a single sensor package",
				ArgsUsage: "TYPE VALUE...",
				Action:    summary,
			},
			{
				Name:  "run",
				Usage: "Summarize the configured sensor packages",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "file with sensor packages (json or yaml)",
					},
					&cli.BoolFlag{
						Name:  "totals",
						Value: false,
						Usage: "print totals by workout type",
					},
				},
				Action: run,
			},
			{
				Name:   "kinds",
				Usage:  "List the supported workout types",
				Action: kinds,
			},
			{
				Name:  "serve",
				Usage: "Serve the http api",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "base-url",
						Value:   "http://localhost:9001",
						Usage:   "Base URL",
						EnvVars: []string{"BASE_URL"},
					},
					&cli.BoolFlag{
						Name:    "netlify",
						Value:   false,
						Usage:   "run as a netlify function",
						EnvVars: []string{"NETLIFY"},
					},
					&cli.BoolFlag{
						Name:  "metrics",
						Value: false,
						Usage: "expose prometheus metrics",
					},
				},
				Action: func(c *cli.Context) error {
					if c.Bool("netlify") {
						return function(c)
					}
					return serve(c)
				},
			},
		},
	}
}

func main() {
	if err := newApp().RunContext(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}
