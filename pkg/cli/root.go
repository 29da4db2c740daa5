package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/smith3v/lcurve/pkg/config"
	"github.com/smith3v/lcurve/pkg/daily"
	"github.com/smith3v/lcurve/pkg/db"
	"github.com/smith3v/lcurve/pkg/logger"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const defaultConfigPath = "config.json"

// app carries what the commands of one invocation share.
type app struct {
	configPath string
	cfg        config.Config
	location   *time.Location
	now        func() time.Time
	in         io.Reader

	gdb  *gorm.DB
	repo *db.Repository
}

func newApp() *app {
	return &app{
		now: time.Now,
		in:  os.Stdin,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "lcurve",
		Short: "Daily practice picker for algorithm interview problems",
		Long: `lcurve keeps a catalog of practice problems and picks a few of them
each day, favouring the ones you have not touched in a while.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", defaultConfigPath, "path to the JSON config file")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.loadConfig(root.PersistentFlags().Changed("config"))
	}

	root.AddCommand(
		newTodayCmd(a),
		newAddCmd(a),
		newListCmd(a),
		newDoneCmd(a),
		newCategoriesCmd(a),
		newImportCmd(a),
		newExportCmd(a),
		newStatsCmd(a),
		newSessionCmd(a),
	)
	return root
}

// Execute runs the command line against os.Args.
func Execute(ctx context.Context) error {
	return run(ctx, newApp(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, a *app, args []string, out, errOut io.Writer) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	defer a.close()
	return root.ExecuteContext(ctx)
}

func (a *app) loadConfig(explicit bool) error {
	err := config.LoadConfig(a.configPath)
	switch {
	case err == nil:
		a.cfg = config.AppConfig
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		a.cfg = config.Default()
	default:
		return fmt.Errorf("load config %s: %w", a.configPath, err)
	}

	if err := logger.Configure(logger.Options{
		Level: a.cfg.Logging.Level,
		File:  a.cfg.Logging.File,
	}); err != nil {
		logger.Error("failed to configure logger", "error", err)
	}

	location, err := time.LoadLocation(a.cfg.Selection.Timezone)
	if err != nil {
		return fmt.Errorf("selection timezone %q: %w", a.cfg.Selection.Timezone, err)
	}
	a.location = location
	return nil
}

func (a *app) repository() (*db.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	gdb, err := db.Open(a.cfg.Database, a.cfg.Logging.GormLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", daily.ErrStorageUnavailable, err)
	}
	a.gdb = gdb
	a.repo = db.NewRepository(gdb)
	return a.repo, nil
}

func (a *app) newSession() (*daily.Session, error) {
	repo, err := a.repository()
	if err != nil {
		return nil, err
	}
	return daily.NewSession(repo, a.location, a.now), nil
}

func (a *app) clock() time.Time {
	if a.location == nil {
		return a.now()
	}
	return a.now().In(a.location)
}

func (a *app) close() {
	if a.gdb == nil {
		return
	}
	if err := db.Close(a.gdb); err != nil {
		logger.Error("failed to close database", "error", err)
	}
	a.gdb = nil
	a.repo = nil
}
