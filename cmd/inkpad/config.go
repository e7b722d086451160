package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/inkpad/internal/config"
)

type configCmd struct {
	*root
	fs     *flag.FlagSet
	file   string
	stdout io.Writer
}

func (c *configCmd) FlagSet() *flag.FlagSet { return c.fs }
func (c *configCmd) Program() string        { return c.root.subcommand("config") }

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	c := &configCmd{root: r, fs: fs, stdout: os.Stdout}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.file, "file", "", "where save writes (default: the loaded file or "+config.DefaultPath()+")")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c}
	}
	switch args[0] {
	case "print":
		_, err := fmt.Fprint(c.stdout, c.root.config.String())
		return err
	case "save":
		return c.runSave()
	default:
		return &UsageError{of: c, reason: fmt.Sprintf("unknown config command: %s", args[0])}
	}
}

func (c *configCmd) runSave() error {
	path := c.file
	if path == "" {
		path = config.NewLoader(version, configPathOverride).Path()
	}
	if path == "" {
		path = config.DefaultPath()
	}
	if err := c.root.config.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Configuration saved to %s\n", path)
	return nil
}
