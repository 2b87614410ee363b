// Package main provides a CLI that checks a batch of workshop registrations
// and prints one JSON line per entry.
//
//	regcheck -input registrations.yaml -format yaml -today 2024-06-15
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"workshop/internal/platform/config"
	"workshop/internal/platform/logger"
	"workshop/internal/registration/metrics"
	"workshop/internal/registration/models"
	"workshop/internal/registration/service"
	dErrors "workshop/pkg/domain-errors"
	"workshop/pkg/platform/audit"
	"workshop/pkg/requestcontext"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

type entryResult struct {
	Entry        int                          `json:"entry"`
	Status       string                       `json:"status"`
	Registration *models.RegistrationResponse `json:"registration,omitempty"`
	Errors       []fieldError                 `json:"errors,omitempty"`
}

type fieldError struct {
	Param   string `json:"param,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run wires config, logging, metrics and the registration service and
// returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	fs := flag.NewFlagSet("regcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("input", "", "Input file. Reads stdin if empty.")
	format := fs.String("format", cfg.Format, "Input format: json or yaml")
	today := fs.String("today", cfg.Today, "Reference date (yyyy-mm-dd). System clock if empty.")
	logLevel := fs.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	cfg.Format, cfg.Today, cfg.LogLevel = *format, *today, *logLevel

	ref, err := cfg.ReferenceTime()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log := logger.NewWithWriter(stderr, cfg.LogLevel)
	svc := service.New(
		service.WithLogger(log),
		service.WithAuditPublisher(audit.NewLogPublisher(log)),
		service.WithMetrics(metrics.New(prometheus.NewRegistry())),
	)

	r := stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
		defer f.Close()
		r = f
	}

	reqs, err := models.DecodeRequests(r, cfg.Format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log.Debug("checking registrations", "count", len(reqs), "format", cfg.Format, "today", cfg.Today)

	enc := json.NewEncoder(stdout)
	code := exitOK
	for i := range reqs {
		entry := i + 1
		ctx := requestcontext.WithRequestID(context.Background(), "entry-"+strconv.Itoa(entry))
		if !ref.IsZero() {
			ctx = requestcontext.WithTime(ctx, ref)
		}

		result := entryResult{Entry: entry}
		reg, err := svc.Register(ctx, &reqs[i])
		if err != nil {
			result.Status = "rejected"
			result.Errors = toFieldErrors(err)
			code = exitRejected
		} else {
			resp := models.ToResponse(reg)
			result.Status = "accepted"
			result.Registration = &resp
		}
		if err := enc.Encode(result); err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
	}
	return code
}

func toFieldErrors(err error) []fieldError {
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	out := make([]fieldError, 0, len(errs))
	for _, e := range errs {
		fe := fieldError{Code: string(dErrors.CodeInternal), Message: e.Error()}
		var de *dErrors.Error
		if errors.As(e, &de) {
			fe.Param = de.Param
			fe.Code = string(de.Code)
		}
		out = append(out, fe)
	}
	return out
}
