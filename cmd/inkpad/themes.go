package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/example/inkpad/internal/theme"
)

// themesCmd lists the themes -theme accepts.
type themesCmd struct {
	*root
	fs     *flag.FlagSet
	stdout io.Writer
}

func (t *themesCmd) FlagSet() *flag.FlagSet { return t.fs }
func (t *themesCmd) Program() string        { return t.root.subcommand("themes") }

func parseThemesCmd(args []string, r *root) (*themesCmd, error) {
	fs := flag.NewFlagSet("themes", flag.ContinueOnError)
	t := &themesCmd{root: r, fs: fs, stdout: os.Stdout}
	fs.Usage = usageFunc(t)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *themesCmd) Run() error {
	seen := map[string]bool{}
	var names []string
	for _, n := range theme.NewLoader().List() {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	for n := range t.root.config.Themes {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	for _, n := range names {
		mark := " "
		if n == t.root.config.Theme {
			mark = "*"
		}
		if _, err := fmt.Fprintf(t.stdout, "%s %s\n", mark, n); err != nil {
			return err
		}
	}
	return nil
}
