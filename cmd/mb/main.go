package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pbaille/meetbook/internal/api"
	"github.com/pbaille/meetbook/internal/command"
	"github.com/pbaille/meetbook/internal/config"
	"github.com/pbaille/meetbook/internal/fetcher"
	"github.com/pbaille/meetbook/internal/logging"
	"github.com/pbaille/meetbook/internal/logic"
	"github.com/pbaille/meetbook/internal/model"
	"github.com/pbaille/meetbook/internal/store"
	"github.com/pbaille/meetbook/internal/tui"
)

var (
	configPath string
	dataPath   string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mb",
		Short: "Contacts and meetings, managed from the keyboard",
		Long: "mb keeps an address book of persons and meetings.\n" +
			"Without a subcommand it opens the interactive terminal interface.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			return tui.Run(a.logic, a.log)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", filepath.Join(config.DefaultDir(), "config.yaml"), "config file")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "data file (overrides storage.path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(execCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(serveCmd())
	return rootCmd
}

// app is everything a subcommand needs, opened from the config.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	storage store.Storage
	logic   *logic.Logic
}

func openApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dataPath != "" {
		cfg.Storage.Path = dataPath
	}

	log, err := logging.New(cfg.Logging, verbose)
	if err != nil {
		return nil, err
	}

	s, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		log.Sync()
		return nil, err
	}
	log.Info("starting meetbook",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("path", s.Path()))

	book, err := s.Load()
	switch {
	case errors.Is(err, store.ErrNoData):
		log.Info("data file not found, starting with a sample address book")
		book = model.SampleAddressBook()
	case err != nil:
		log.Warn("data file could not be read, starting with an empty address book", zap.Error(err))
		book = model.NewAddressBook()
	}

	m := model.New(book, model.WithPageFetcher(fetcher.New(nil)))
	return &app{
		cfg:     cfg,
		log:     log,
		storage: s,
		logic:   logic.New(m, s, log),
	}, nil
}

func (a *app) close() {
	if err := a.storage.Close(); err != nil {
		a.log.Warn("close storage", zap.Error(err))
	}
	a.log.Info("stopped")
	a.log.Sync()
}

func execCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "exec [command line]",
		Short: "Run one command and print its result",
		Example: "  mb exec add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2\n" +
			"  mb exec --mode meetings find lecture",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := command.ParseMode(mode)
			if err != nil {
				return err
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			res, err := a.logic.ExecuteIn(m, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Feedback)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", command.ModePersons.String(), "list the command acts on (persons, meetings)")
	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "list [persons|meetings]",
		Short:     "Print persons or meetings",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"persons", "meetings"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := command.ModePersons
			if len(args) == 1 {
				m, err := command.ParseMode(args[0])
				if err != nil {
					return err
				}
				mode = m
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			out := cmd.OutOrStdout()
			if mode == command.ModeMeetings {
				meetings := a.logic.Meetings()
				if len(meetings) == 0 {
					fmt.Fprintln(out, "No meetings yet. Use 'mb exec -m meetings add ...' to create one.")
					return nil
				}
				for i, mt := range meetings {
					fmt.Fprintf(out, "%3d. %s\n", i+1, mt)
				}
				return nil
			}

			persons := a.logic.FilteredPersons()
			if len(persons) == 0 {
				fmt.Fprintln(out, "No persons yet. Use 'mb exec add ...' to create one.")
				return nil
			}
			for i, p := range persons {
				fmt.Fprintf(out, "%3d. %s\n", i+1, p)
			}
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on http://%s\n", a.storage.Path(), addr)
			return api.New(a.logic, addr, a.log).Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "server address (default from config)")
	return cmd
}
