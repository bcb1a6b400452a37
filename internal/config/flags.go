package config

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// DLOptions selects which steps the stats downloader runs.
type DLOptions struct {
	Gamelogs       bool
	PlayerStats    bool
	UpdateJSONOnly bool
}

// RunAll reports whether no step was selected, in which case both downloads run.
func (o DLOptions) RunAll() bool {
	return !o.Gamelogs && !o.PlayerStats && !o.UpdateJSONOnly
}

// ESPNOptions selects what the ESPN downloader does.
type ESPNOptions struct {
	EverySeason           bool
	BackfillPlayerDetails bool
}

// ParseDLFlags parses stats downloader flags, applying --data-dir onto cfg.
func ParseDLFlags(args []string, cfg *Config, output io.Writer) (DLOptions, error) {
	var opts DLOptions
	fs := newFlagSet("dl", "download stats from stats.nba.com", output)
	fs.BoolVarP(&opts.Gamelogs, "gamelogs", "g", false, "download team and player game logs")
	fs.BoolVarP(&opts.PlayerStats, "player-stats", "s", false, "download player season stats")
	fs.BoolVar(&opts.UpdateJSONOnly, "update-json-only", false, "rebuild json files from cached game logs")
	fs.StringVarP(&cfg.DataDir, "data-dir", "d", cfg.DataDir, "path to data directory")
	if err := parse(fs, args); err != nil {
		return DLOptions{}, err
	}
	return opts, nil
}

// ParseESPNFlags parses ESPN downloader flags, applying --data-dir onto cfg.
func ParseESPNFlags(args []string, cfg *Config, output io.Writer) (ESPNOptions, error) {
	var opts ESPNOptions
	fs := newFlagSet("espn", "download net points data from the ESPN analytics feed", output)
	fs.BoolVarP(&opts.EverySeason, "every-season", "e", false, "download every available season, not just the current one")
	fs.BoolVar(&opts.BackfillPlayerDetails, "backfill-player-details", false, "add player_details to previously downloaded days")
	fs.StringVarP(&cfg.DataDir, "data-dir", "d", cfg.DataDir, "path to data directory")
	if err := parse(fs, args); err != nil {
		return ESPNOptions{}, err
	}
	return opts, nil
}

// parse reports bad flags with the usage text. ContinueOnError leaves that to the caller;
// --help already prints usage.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		_, _ = fmt.Fprintln(fs.Output(), err)
		fs.Usage()
	}
	return err
}

func newFlagSet(name, description string, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.Usage = func() {
		w := fs.Output()
		_, _ = io.WriteString(w, name+": "+description+"\n")
		fs.PrintDefaults()
	}
	return fs
}
