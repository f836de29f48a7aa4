package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Dynom/mxreport/validator"
	"github.com/Dynom/mxreport/werkit"
	"github.com/sirupsen/logrus"
)

const (
	DefaultValidFile   = "output.txt"
	DefaultInvalidFile = "invalid-domains.txt"

	bannerWidth = 99
)

// Option is the type accepted by New to set specific options
type Option func(r *Reporter)

// WithWorkers sets the number of concurrent lookups. The default of 1 resolves one domain after the other.
func WithWorkers(workers int) Option {
	return func(r *Reporter) {
		if workers > 0 {
			r.workers = workers
		}
	}
}

// WithTimeout limits the duration of every lookup. Zero leaves it up to the resolver.
func WithTimeout(d time.Duration) Option {
	return func(r *Reporter) {
		r.timeout = d
	}
}

// WithLogger sets the logger, by default nothing is logged
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Reporter) {
		r.logger = logger
	}
}

// WithConsole sets where report lines are echoed to, defaults to os.Stdout
func WithConsole(w io.Writer) Option {
	return func(r *Reporter) {
		r.console = w
	}
}

// WithFiles sets the names of the valid-domain and the invalid-address report
func WithFiles(valid, invalid string) Option {
	return func(r *Reporter) {
		r.validFile = valid
		r.invalidFile = invalid
	}
}

// New creates a Reporter that resolves domains using resolver
func New(resolver validator.LookupMX, options ...Option) *Reporter {
	discard := logrus.New()
	discard.Out = io.Discard

	r := &Reporter{
		resolver:    resolver,
		logger:      discard,
		console:     os.Stdout,
		workers:     1,
		validFile:   DefaultValidFile,
		invalidFile: DefaultInvalidFile,
	}

	for _, o := range options {
		o(r)
	}

	return r
}

type Reporter struct {
	resolver    validator.LookupMX
	logger      logrus.FieldLogger
	console     io.Writer
	workers     int
	timeout     time.Duration
	validFile   string
	invalidFile string
}

// Summary holds the counts of a single run
type Summary struct {
	Addresses int `json:"addresses"`
	Domains   int `json:"domains"`
	Resolved  int `json:"resolved"`
	Failed    int `json:"failed"`
	Invalid   int `json:"invalid"`
}

type resolveTask struct {
	index  int
	domain string
}

type resolved struct {
	index  int
	result validator.MXResult
}

// Run resolves the unique valid domains of emails and writes both reports. Lookup failures only exclude a domain from
// the report, errors writing the reports or a cancelled ctx are returned. Nothing is written when ctx is cancelled
// before all domains are resolved.
func (r *Reporter) Run(ctx context.Context, emails []string) (Summary, error) {
	domains := NewDomainSet(emails).Domains()
	summary := Summary{
		Addresses: len(emails),
		Domains:   len(domains),
	}

	lines, err := r.resolveAll(ctx, domains)
	if err != nil {
		return summary, err
	}

	summary.Resolved = len(lines)
	summary.Failed = len(domains) - len(lines)

	if err := writeLines(r.validFile, lines); err != nil {
		return summary, err
	}

	invalid := InvalidAddresses(emails)
	summary.Invalid = len(invalid)

	if len(invalid) == 0 {
		return summary, nil
	}

	if err := writeLines(r.invalidFile, invalid); err != nil {
		return summary, err
	}

	r.printInvalid(invalid)

	return summary, nil
}

// resolveAll returns the report lines in the order of domains. Lines are echoed as soon as all preceding domains are
// done, regardless of the order in which the workers finish.
func (r *Reporter) resolveAll(ctx context.Context, domains []string) ([]string, error) {
	results := make(chan resolved)

	var wi werkit.WerkIt[resolveTask]
	wi.StartWorkers(r.workers, func(tasks <-chan resolveTask) {
		for t := range tasks {
			results <- resolved{
				index:  t.index,
				result: r.resolve(ctx, t.domain),
			}
		}
	})

	go func() {
		for i, domain := range domains {
			wi.Process(resolveTask{index: i, domain: domain})
		}

		wi.Wait()
		close(results)
	}()

	slots := make([]*validator.MXResult, len(domains))
	lines := make([]string, 0, len(domains))

	var next int
	for res := range results {
		res := res
		slots[res.index] = &res.result

		for ; next < len(slots) && slots[next] != nil; next++ {
			if line, ok := r.report(*slots[next]); ok {
				lines = append(lines, line)
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func (r *Reporter) resolve(ctx context.Context, domain string) validator.MXResult {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	return validator.ResolveLowestPreferenceMX(ctx, r.resolver, domain)
}

// report echoes and returns the report line of a resolved domain. Failures are only logged.
func (r *Reporter) report(result validator.MXResult) (string, bool) {
	logger := r.logger.WithFields(logrus.Fields{
		"domain":      result.Domain,
		"duration_ms": result.Duration.Milliseconds(),
	})

	if !result.Resolved() {
		logger.WithError(result.Err).Debug(result.Message())
		return "", false
	}

	line := FormatLine(result)
	_, _ = fmt.Fprintln(r.console, line)

	logger.WithFields(logrus.Fields{
		"host":       result.Host,
		"preference": result.Preference,
	}).Debug("Resolved")

	return line, true
}

func (r *Reporter) printInvalid(invalid []string) {
	banner := strings.Repeat("=", bannerWidth)

	_, _ = fmt.Fprintf(r.console, "%s\nThe following %d email addresses are invalid and were saved in '%s':\n%s\n",
		banner, len(invalid), r.invalidFile, banner)
	_, _ = fmt.Fprintln(r.console, strings.Join(invalid, "\n"))
}

// FormatLine produces the tab separated domain, host and preference line of the valid-domain report
func FormatLine(result validator.MXResult) string {
	return result.Domain + "\t" + result.Host + "\t" + strconv.FormatUint(uint64(result.Preference), 10)
}

// writeLines writes lines, joined and terminated by a newline. Without lines, the file holds just the newline.
func writeLines(fileName string, lines []string) error {
	content := strings.Join(lines, "\n") + "\n"

	if err := os.WriteFile(fileName, []byte(content), 0o644); err != nil {
		return fmt.Errorf("unable to write %q, reason: %w", fileName, err)
	}

	return nil
}
