package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/fitsensor/trainer"
)

func packages(path string) ([]trainer.Package, error) {
	switch path {
	case "":
		log.Info().Str("file", "etc/packages.json").Msg("input")
		val, err := trainer.Content.ReadFile("etc/packages.json")
		if err != nil {
			return nil, err
		}
		return trainer.ReadPackages(bytes.NewReader(val))
	default:
		log.Info().Str("file", path).Msg("input")
		fp, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fp.Close()
		return trainer.ReadPackages(fp)
	}
}

func report(c *cli.Context) error {
	files := c.StringSlice("input")
	if len(files) == 0 {
		files = []string{""}
	}
	// batches are independent; output stays in input order
	lines := make([][]string, len(files))
	grp, _ := errgroup.WithContext(c.Context)
	for i, file := range files {
		i, file := i, file
		grp.Go(func() error {
			pkgs, err := packages(file)
			if err != nil {
				return err
			}
			for _, pkg := range pkgs {
				rec, err := trainer.Evaluate(pkg)
				if err != nil {
					log.Warn().Str("workout", pkg.Type).Err(err).Msg("skipping package")
					continue
				}
				lines[i] = append(lines[i], rec.Message())
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}
	for _, batch := range lines {
		for _, line := range batch {
			fmt.Fprintln(c.App.Writer, line)
		}
	}
	return nil
}

func newEngine() *gin.Engine {
	engine := gin.Default()
	engine.POST("/reports", trainer.ReportsHandler())
	return engine
}

func serve(c *cli.Context) error {
	address := c.String("address")
	log.Info().Str("address", address).Msg("serving")
	return http.ListenAndServe(address, newEngine())
}

func function(c *cli.Context) error {
	log.Info().Msg("running function")
	gl := ginadapter.New(newEngine())
	lambda.Start(trainer.LambdaHandler(gl))
	return nil
}

func main() {
	app := &cli.App{
		Name:     "trainer",
		HelpName: "trainer",
		Usage:    "Training summaries from workout sensor readings",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "input",
				Usage: "file with a batch of sensor packages",
			},
			&cli.BoolFlag{
				Name:    "serve",
				Value:   false,
				Usage:   "evaluate sensor packages over http",
				EnvVars: []string{"TRAINER_SERVE"},
			},
			&cli.StringFlag{
				Name:    "address",
				Value:   "0.0.0.0:9001",
				Usage:   "listen address",
				EnvVars: []string{"TRAINER_ADDRESS"},
			},
			&cli.BoolFlag{
				Name:    "netlify",
				Value:   false,
				Usage:   "run as a netlify function",
				EnvVars: []string{"NETLIFY"},
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			log.Error().Err(err).Msg(c.App.Name)
		},
		Before: func(c *cli.Context) error {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
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
		Action: func(c *cli.Context) error {
			switch {
			case c.Bool("netlify"):
				return function(c)
			case c.Bool("serve"):
				return serve(c)
			}
			return report(c)
		},
	}
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}
