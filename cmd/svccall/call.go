// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/discard"
	"github.com/spf13/cobra"

	"github.com/sirseerhq/sirseer-svccall/internal/config"
	svcerrors "github.com/sirseerhq/sirseer-svccall/internal/errors"
	"github.com/sirseerhq/sirseer-svccall/internal/neterror"
	"github.com/sirseerhq/sirseer-svccall/internal/output"
	"github.com/sirseerhq/sirseer-svccall/internal/trace"
	"github.com/sirseerhq/sirseer-svccall/pkg/svccall"
	"github.com/sirseerhq/sirseer-svccall/pkg/version"
)

// callOptions collects the flag values of the call command.
type callOptions struct {
	configPath string
	urlFlag    string
	method     string
	headers    []string
	bodyArg    string
	outputFile string
	format     string
	repeat     int
	timeout    time.Duration
	traceFlag  bool
	verbose    bool
}

// newCallCommand builds the call command.
func newCallCommand() *cobra.Command {
	opts := &callOptions{}

	cmd := &cobra.Command{
		Use:   "call [service]",
		Short: "Invoke a configured JSON service once (or --repeat times)",
		Long: `Invoke a JSON service by name, as defined in the configuration file,
or ad hoc via --url. The decoded response is written as one NDJSON
envelope per invocation (or human-readable text with --format pretty).

A non-2xx answer with a decodable JSON body is a completed call: the
envelope carries the decoded error payload and the command succeeds.
Transport failures and undecodable bodies abort the command.

Request bodies are passed with --body, either inline JSON or @file:
  svccall call login --body '{"user":"anna"}'
  svccall call login --body @login.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runCall(cmd.Context(), name, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Config file path (default: standard locations)")
	cmd.Flags().StringVar(&opts.urlFlag, "url", "", "Call this URL directly instead of a configured service")
	cmd.Flags().StringVar(&opts.method, "method", "", "HTTP method for --url calls (default: GET)")
	cmd.Flags().StringArrayVar(&opts.headers, "header", nil, "Extra request header for --url calls, name:value (repeatable)")
	cmd.Flags().StringVar(&opts.bodyArg, "body", "", "JSON request body, inline or @file")
	cmd.Flags().StringVar(&opts.outputFile, "output", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&opts.format, "format", "ndjson", "Output format: ndjson or pretty")
	cmd.Flags().IntVar(&opts.repeat, "repeat", 1, "Invoke the service this many times, sequentially")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Per-invocation timeout")
	cmd.Flags().BoolVar(&opts.traceFlag, "trace", false, "Write a session trace summary to stderr")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable debug logging to stderr")

	return cmd
}

// runCall executes the call command.
func runCall(ctx context.Context, name string, opts *callOptions) error {
	logger := newLogger(opts.verbose)

	desc, serviceName, err := resolveDescriptor(name, opts)
	if err != nil {
		return err
	}

	body, err := parseBody(opts.bodyArg)
	if err != nil {
		return err
	}

	writer, err := newOutputWriter(opts)
	if err != nil {
		return err
	}
	defer writer.Close()

	svc, err := svccall.New[json.RawMessage, json.RawMessage, json.RawMessage](desc, svccall.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("%v: %w", err, svcerrors.ErrInvalidDescriptor)
	}

	if opts.repeat < 1 {
		return fmt.Errorf("--repeat must be at least 1")
	}

	tracker := trace.New()
	for i := 0; i < opts.repeat; i++ {
		if err := invokeOnce(ctx, svc, serviceName, body, opts.timeout, tracker, writer); err != nil {
			return err
		}
	}

	if opts.traceFlag {
		if err := tracker.WriteSummary(os.Stderr, version.Version); err != nil {
			return err
		}
	}

	return nil
}

// invokeOnce performs one invocation, records it and writes its envelope.
func invokeOnce(
	ctx context.Context,
	svc *svccall.Service[json.RawMessage, json.RawMessage, json.RawMessage],
	serviceName string,
	body *json.RawMessage,
	timeout time.Duration,
	tracker *trace.Tracker,
	writer output.Writer,
) error {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	desc := svc.Descriptor()
	method := string(desc.Method)
	if method == "" {
		method = "GET"
	}

	call := tracker.Begin(serviceName, method, desc.URL)
	started := time.Now()

	res, err := svc.Execute(callCtx, body)
	elapsed := time.Since(started)

	if err != nil {
		var decodeErr *svccall.DecodeError
		if errors.As(err, &decodeErr) {
			call.Complete(trace.OutcomeDecodeError, decodeErr.StatusCode)
			return fmt.Errorf("%v: %w", err, svcerrors.ErrDecodeFailure)
		}

		call.Complete(trace.OutcomeTransportError, 0)
		inspector := neterror.NewInspector()
		if inspector.IsNetworkError(err) {
			wrapped := fmt.Errorf("%v: %w", err, svcerrors.ErrNetworkFailure)
			return neterror.WithUserAction(wrapped,
				"Network connection failed. Please check your internet connection and try again")
		}
		return err
	}

	env := &output.Envelope{
		Service:  serviceName,
		Duration: elapsed.Round(time.Millisecond).String(),
	}
	if res.OK {
		env.Outcome = string(trace.OutcomeOK)
		env.OK = true
		env.Data = res.Data
		rec := call.Complete(trace.OutcomeOK, 0)
		env.CallID = rec.CallID
	} else {
		env.Outcome = string(trace.OutcomeServiceError)
		env.Error = res.Err
		rec := call.Complete(trace.OutcomeServiceError, 0)
		env.CallID = rec.CallID
	}

	return writer.Write(env)
}

// resolveDescriptor builds the descriptor either ad hoc from --url or by
// looking the service up in the configuration.
func resolveDescriptor(name string, opts *callOptions) (svccall.Descriptor, string, error) {
	if opts.urlFlag != "" {
		headers, err := parseHeaderFlags(opts.headers)
		if err != nil {
			return svccall.Descriptor{}, "", err
		}
		desc := svccall.Descriptor{
			URL:     opts.urlFlag,
			Method:  svccall.Method(strings.ToUpper(opts.method)),
			Headers: headers,
		}
		if err := desc.Validate(); err != nil {
			return svccall.Descriptor{}, "", fmt.Errorf("%v: %w", err, svcerrors.ErrInvalidDescriptor)
		}
		return desc, opts.urlFlag, nil
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return svccall.Descriptor{}, "", err
	}

	if name == "" {
		name = cfg.DefaultService
	}
	if name == "" {
		return svccall.Descriptor{}, "", fmt.Errorf(
			"no service given. Name a configured service, set default_service, or use --url")
	}

	desc, err := cfg.Descriptor(name)
	if err != nil {
		return svccall.Descriptor{}, "", err
	}
	return desc, name, nil
}

// parseBody turns the --body flag into an optional request body. An @file
// argument reads the body from disk. The body must be valid JSON.
func parseBody(bodyArg string) (*json.RawMessage, error) {
	if bodyArg == "" {
		return nil, nil
	}

	raw := []byte(bodyArg)
	if strings.HasPrefix(bodyArg, "@") {
		data, err := os.ReadFile(bodyArg[1:])
		if err != nil {
			return nil, fmt.Errorf("failed to read body file: %w", err)
		}
		raw = data
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("request body is not valid JSON")
	}

	body := json.RawMessage(raw)
	return &body, nil
}

// parseHeaderFlags parses repeated name:value header flags.
func parseHeaderFlags(flags []string) (map[string]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	headers := make(map[string]string, len(flags))
	for _, flag := range flags {
		name, value, found := strings.Cut(flag, ":")
		if !found || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid header %q. Expected name:value", flag)
		}
		headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return headers, nil
}

// newOutputWriter builds the writer selected by --output and --format.
func newOutputWriter(opts *callOptions) (output.Writer, error) {
	switch opts.format {
	case "ndjson", "pretty":
	default:
		return nil, fmt.Errorf("unknown format %q. Expected ndjson or pretty", opts.format)
	}

	if opts.outputFile == "" {
		if opts.format == "pretty" {
			return output.NewPrettyWriter(os.Stdout), nil
		}
		return output.NewWriter(os.Stdout), nil
	}

	if opts.format == "pretty" {
		file, err := os.Create(opts.outputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file: %w", err)
		}
		return &closingPrettyWriter{PrettyWriter: output.NewPrettyWriter(file), file: file}, nil
	}

	return output.NewFileWriter(opts.outputFile)
}

// closingPrettyWriter closes its backing file on Close.
type closingPrettyWriter struct {
	*output.PrettyWriter
	file *os.File
}

func (w *closingPrettyWriter) Close() error {
	if err := w.PrettyWriter.Close(); err != nil {
		return err
	}
	return w.file.Close()
}

// newLogger builds the apex logger used for invocation debug output.
func newLogger(verbose bool) log.Interface {
	if !verbose {
		return &log.Logger{Handler: discard.New(), Level: log.InfoLevel}
	}
	return &log.Logger{Handler: clihandler.New(os.Stderr), Level: log.DebugLevel}
}
