// Command formcheck validates a registration form submission.
//
// Usage:
//
//	formcheck [-env file] submission.yaml
//	formcheck -interactive
//
// A submission is a YAML or JSON object keyed by field name. The command
// prints one line per failing field and exits with status 1 when the form is
// invalid.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formcheck/pkg/config"
	"github.com/dmitrymomot/formcheck/pkg/field"
	"github.com/dmitrymomot/formcheck/pkg/form"
	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/source"
)

const serviceName = "formcheck"

const (
	exitValid   = 0
	exitInvalid = 1
	exitError   = 2
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"` // Env selects logging defaults: "production" logs JSON at info level.
	LogLevel  string `env:"LOG_LEVEL"`                        // LogLevel overrides the environment's log level.
	LogFormat string `env:"LOG_FORMAT"`                       // LogFormat overrides the environment's log format ("json" or "text").
	Form      form.Config
}

type submissionIDKey struct{}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	interactive := flags.Bool("interactive", false, "prompt for each field instead of reading a file")
	envFile := flags.String("env", "", "load environment variables from this .env file")
	if err := flags.Parse(args); err != nil {
		return exitError
	}

	if *envFile != "" {
		if err := config.LoadEnv(*envFile); err != nil {
			fmt.Fprintf(stderr, "formcheck: %v\n", err)
			return exitError
		}
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "formcheck: %v\n", err)
		return exitError
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "formcheck: %v\n", err)
		return exitError
	}

	ctx := context.WithValue(context.Background(), submissionIDKey{}, uuid.NewString())

	var src *source.Memory
	switch {
	case *interactive:
		src = source.NewMemory()
	case flags.NArg() == 1:
		src, err = readSubmission(flags.Arg(0), stdin)
	default:
		flags.Usage()
		return exitError
	}
	if err != nil {
		log.ErrorContext(ctx, "failed to read submission", logger.Error(err))
		return exitError
	}

	f, err := form.NewFromConfig(src, cfg.Form, form.WithLogger(log), form.WithContext(ctx))
	if err != nil {
		log.ErrorContext(ctx, "failed to load country table", logger.Error(err))
		return exitError
	}

	if *interactive {
		if err := prompt(ctx, newSurveyPrompter(), f, src); err != nil {
			if errors.Is(err, ErrAborted) {
				fmt.Fprintln(stderr, "aborted")
				return exitError
			}
			log.ErrorContext(ctx, "prompt failed", logger.Error(err))
			return exitError
		}
	}

	ok := f.Submit()
	printMessages(stdout, src)
	if !ok {
		return exitInvalid
	}
	return exitValid
}

func newLogger(cfg appConfig, out io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithOutput(out),
		logger.WithContextExtractors(submissionIDFromContext),
	}
	if cfg.LogLevel != "" {
		lvl, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(lvl))
	}
	if cfg.LogFormat != "" {
		format := logger.Format(cfg.LogFormat)
		if format != logger.FormatJSON && format != logger.FormatText {
			return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}

// submissionIDFromContext tags records with the id of the run.
func submissionIDFromContext(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(submissionIDKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.SubmissionID(id), true
}

// readSubmission decodes a YAML or JSON object from path; "-" reads stdin.
func readSubmission(path string, stdin io.Reader) (*source.Memory, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read submission: %w", err)
	}

	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode submission: %w", err)
	}
	return source.FromMap(values)
}

// printMessages writes the displayed messages in form order.
func printMessages(w io.Writer, src *source.Memory) {
	targets := append(field.All(), field.DOB, field.File, field.Feedback)
	for _, id := range targets {
		msg := src.Message(id)
		if msg == "" {
			continue
		}
		if id == field.Feedback {
			fmt.Fprintln(w, msg)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", id, msg)
	}
}
