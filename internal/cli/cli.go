// Package cli handles command line interface logic
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/config"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/field"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/options"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/platform"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/stash"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
)

// Build contains the version information of the binary.
type Build struct {
	Version string
	Commit  string
	Date    string
}

// runner holds the state shared by all commands of one invocation.
type runner struct {
	build  Build
	opts   options.Program
	logger *log.Logger

	writeShort bool
	writeLong  bool
}

// UsageError represents an error that should show usage information
type UsageError struct {
	cmd *cobra.Command
	msg string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage of the command that failed.
func (e *UsageError) ShowUsage() {
	if e.cmd != nil {
		_ = e.cmd.Usage()
	}
}

// NewRootCommand returns the command tree of the save editor.
func NewRootCommand(build Build) *cobra.Command {
	r := &runner{
		build: build,
		opts:  options.New(),
	}

	root := &cobra.Command{
		Use:   "s3save",
		Short: "Sonic 3 save file editor and converter",
		Long: `Sonic 3 save file editor and converter.

Reads and writes save files of the console release (SRAM dumps), Everdrive flash
carts, the Sonic & Knuckles Collection for PC, Sega Genesis Classics on Steam and
Sonic 3 A.I.R.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&r.opts.Config, "config", "c", "", "ini configuration file (default "+config.DefaultFile+")")
	flags.StringVar(&r.opts.Dir, "dir", "", "base directory of relative save file names")
	flags.StringVar(&r.opts.Stash, "stash", stash.DefaultFile, "editing session file")
	flags.BoolVar(&r.opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVarP(&r.opts.Quiet, "quiet", "q", false, "perform operations quietly")

	root.AddCommand(
		r.infoCommand(),
		r.convertCommand(),
		r.verifyCommand(),
		r.newCommand(),
		r.hexCommand(),
		r.loadCommand(),
		r.getCommand(),
		r.setCommand(),
		r.dumpCommand(),
		r.saveCommand(),
		r.watchCommand(),
		r.versionCommand(),
	)
	return root
}

func (r *runner) setup(cmd *cobra.Command, _ []string) error {
	r.logger = config.CreateLogger(r.opts.Debug, r.opts.Quiet)

	if f := cmd.Flags().Lookup("short"); f != nil && f.Changed {
		r.opts.WriteShort = options.ToggleOf(r.writeShort)
	}
	if f := cmd.Flags().Lookup("long"); f != nil && f.Changed {
		r.opts.WriteLong = options.ToggleOf(r.writeLong)
	}

	settings, err := config.Load(r.opts.Config)
	if err != nil {
		return err
	}
	settings.Apply(&r.opts)
	return nil
}

// addFormatFlags adds the flags that select the written format and campaigns.
func (r *runner) addFormatFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&r.opts.Platform, "platform", "p", "", "target platform: "+platformList())
	flags.StringVar(&r.opts.DataSize, "data-size", "", "console data size: byte, word")
	flags.StringVar(&r.opts.ByteOrder, "byte-order", "", "console byte order: big, little")
	flags.IntVar(&r.opts.Filler, "filler", -1, "console filler byte of word sized saves, e.g. 0xff")
	flags.BoolVar(&r.writeShort, "short", false, "write the Sonic 3 campaign (default: if present)")
	flags.BoolVar(&r.writeLong, "long", false, "write the Sonic 3 & Knuckles campaign (default: if present)")
}

// path resolves a save file name against the configured directory.
func (r *runner) path(name string) string {
	return config.ResolvePath(r.opts.Dir, name)
}

func (r *runner) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "s3save %s\n",
				buildinfo.Version(r.build.Version, r.build.Commit, r.build.Date))
			return err
		},
	}
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &UsageError{
				cmd: cmd,
				msg: fmt.Sprintf("%s expects %d argument(s), got %d", cmd.Name(), n, len(args)),
			}
		}
		return nil
	}
}

func rangeArgs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < lo || len(args) > hi {
			return &UsageError{
				cmd: cmd,
				msg: fmt.Sprintf("%s expects %d to %d arguments, got %d", cmd.Name(), lo, hi, len(args)),
			}
		}
		return nil
	}
}

func platformList() string {
	names := make([]string, 0, len(platform.All))
	for _, p := range platform.All {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

func fieldList() string {
	return "  " + strings.Join(field.Paths(), "\n  ")
}

func printEntries(w io.Writer, entries []field.Entry) error {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Path))
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, e.Path, e.Value); err != nil {
			return err
		}
	}
	return nil
}
