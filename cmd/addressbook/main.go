package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"

	"github.com/kailas-cloud/addressbook/internal/config"
	"github.com/kailas-cloud/addressbook/internal/domain/book"
	logpkg "github.com/kailas-cloud/addressbook/internal/logger"
	"github.com/kailas-cloud/addressbook/internal/metrics"
	contactuc "github.com/kailas-cloud/addressbook/internal/usecase/contact"
	"github.com/kailas-cloud/addressbook/internal/version"
)

// CLI is the top-level command structure for addressbook.
// Every invocation starts from the contacts seeded in config/<env>.yaml.
type CLI struct {
	Version   kong.VersionFlag `help:"Show version." short:"V"`
	Env       string           `help:"Config environment (config/<env>.yaml)." default:"${env}"`
	Metrics   bool             `help:"Print metrics after the command."`
	List      ListCmd          `cmd:"" help:"Print every contact."`
	Show      ShowCmd          `cmd:"" help:"Print one contact."`
	FindPhone FindPhoneCmd     `cmd:"" name:"find-phone" help:"Look up a phone number of a contact."`
	Demo      DemoCmd          `cmd:"" help:"Add, edit and delete sample contacts."`
}

// app carries the wired dependencies into command Run methods.
type app struct {
	ctx      context.Context
	contacts *contactuc.Service
	registry *prometheus.Registry
	logger   *zap.Logger
	out      io.Writer
}

func newApp(cfg config.Config, logger *zap.Logger, out io.Writer) (*app, error) {
	reg := prometheus.NewRegistry()
	bookMetrics := metrics.NewBookMetrics(cfg.Metrics.Namespace)
	if err := bookMetrics.Register(reg); err != nil {
		return nil, err
	}

	ctx := logpkg.ContextWithLogger(context.Background(), logger)
	svc := contactuc.New(book.New()).WithRecorder(bookMetrics)
	if err := svc.Seed(ctx, cfg.Book.Seed); err != nil {
		return nil, err
	}

	return &app{ctx: ctx, contacts: svc, registry: reg, logger: logger, out: out}, nil
}

func (a *app) printAll() {
	for _, r := range a.contacts.List(a.ctx) {
		_, _ = fmt.Fprintln(a.out, r)
	}
}

// ListCmd prints every contact.
type ListCmd struct{}

// Run executes the list command.
func (c *ListCmd) Run(a *app) error {
	a.printAll()
	return nil
}

// ShowCmd prints a single contact.
type ShowCmd struct {
	Name string `arg:"" help:"Contact name."`
}

// Run executes the show command.
func (c *ShowCmd) Run(a *app) error {
	r, err := a.contacts.Get(a.ctx, c.Name)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	_, _ = fmt.Fprintln(a.out, r)
	return nil
}

// FindPhoneCmd looks up one phone of a contact.
type FindPhoneCmd struct {
	Name  string `arg:"" help:"Contact name."`
	Phone string `arg:"" help:"Phone number (10 digits)."`
}

// Run executes the find-phone command.
func (c *FindPhoneCmd) Run(a *app) error {
	p, ok, err := a.contacts.FindPhone(a.ctx, c.Name, c.Phone)
	if err != nil {
		return fmt.Errorf("find-phone: %w", err)
	}
	if !ok {
		_, _ = fmt.Fprintf(a.out, "%s: no phone %s\n", c.Name, c.Phone)
		return nil
	}
	_, _ = fmt.Fprintf(a.out, "%s: %s\n", c.Name, p)
	return nil
}

// DemoCmd walks through the full contact lifecycle.
type DemoCmd struct{}

// Run executes the demo command.
func (c *DemoCmd) Run(a *app) error {
	if _, err := a.contacts.Create(a.ctx, "John", "1234567890", "5555555555"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if _, err := a.contacts.Create(a.ctx, "Jane", "9876543210"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	a.printAll()

	if _, err := a.contacts.EditPhone(a.ctx, "John", "1234567890", "1112223333"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	john, err := a.contacts.Get(a.ctx, "John")
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	_, _ = fmt.Fprintln(a.out, john)

	if p, ok := john.FindPhone("5555555555"); ok {
		_, _ = fmt.Fprintf(a.out, "%s: %s\n", john.Name(), p)
	}

	a.contacts.Delete(a.ctx, "Jane")
	_, _ = fmt.Fprintln(a.out, "After deletion:")
	a.printAll()
	return nil
}

// writeMetrics encodes every gathered family in the Prometheus text exposition format.
func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, f := range families {
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encode metric %s: %w", f.GetName(), err)
		}
	}
	return nil
}

func exitCode(err error) int {
	if contactuc.IsNotFound(err) {
		return 2
	}
	return 1
}

// kongVars supplies interpolation values for struct tags.
// The default environment comes from ENV (see config.GetEnv).
func kongVars() kong.Vars {
	return kong.Vars{
		"version": version.String(),
		"env":     config.GetEnv(),
	}
}

func run(cli *CLI, kctx *kong.Context, out io.Writer) error {
	cfg, err := config.Load(cli.Env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(cli.Env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	defer zap.ReplaceGlobals(logger)()

	logger.Debug("Starting addressbook",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", cli.Env),
		zap.String("command", kctx.Command()),
	)

	a, err := newApp(cfg, logger, out)
	if err != nil {
		return err
	}
	if err := kctx.Run(a); err != nil {
		return err
	}
	if cli.Metrics {
		return writeMetrics(out, a.registry)
	}
	return nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("addressbook"),
		kong.Description("In-memory contact address book."),
		kongVars(),
	)
	if err := run(&cli, kctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
