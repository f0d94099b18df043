package cli

import (
	"fmt"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/field"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/fileprocessor"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/loader"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/stash"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
)

func (r *runner) loadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Load a save file for editing",
		Long: `Load a save file for editing.

The file is decoded and kept in a session file until it is written with "save".
Campaigns without valid data are filled with unused slots.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := r.path(args[0])
			img, err := loader.New(r.logger).Load(path)
			if err != nil {
				return err
			}

			hadShort, hadLong := img.FillDefaults()
			writeShort, writeLong := r.opts.Campaigns(img.Platform, hadShort, hadLong)
			if err := stash.Store(r.opts.Stash, path, img, writeShort, writeLong); err != nil {
				return err
			}

			r.logger.Info("Save file loaded",
				log.String("file", path),
				log.Stringer("platform", img.Platform))
			return nil
		},
	}

	cmd.Flags().BoolVar(&r.writeShort, "short", false, "write the Sonic 3 campaign on save (default: if present)")
	cmd.Flags().BoolVar(&r.writeLong, "long", false, "write the Sonic 3 & Knuckles campaign on save (default: if present)")
	return cmd
}

func (r *runner) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get FIELD",
		Short: "Print a field of the loaded save file",
		Long:  "Print a field of the loaded save file. Fields are:\n" + fieldList(),
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, img, err := stash.Retrieve(r.opts.Stash)
			if err != nil {
				return err
			}

			value, err := field.Get(img, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

func (r *runner) setCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set FIELD VALUE",
		Short: "Change a field of the loaded save file",
		Long: `Change a field of the loaded save file. Fields are:
` + fieldList() + `

Names of fields, characters, zones, stages and emerald states do not need to be
typed in full, "hydro" is recognized as "Hydrocity".`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, img, err := stash.Retrieve(r.opts.Stash)
			if err != nil {
				return err
			}

			value, err := field.Set(img, args[0], args[1])
			if err != nil {
				return err
			}
			if err := stash.Store(r.opts.Stash, s.Source, img, s.WriteShort, s.WriteLong); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", args[0], value)
			return err
		},
	}
}

func (r *runner) dumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print all fields of the loaded save file",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, img, err := stash.Retrieve(r.opts.Stash)
			if err != nil {
				return err
			}

			entries, err := field.Dump(img)
			if err != nil {
				return err
			}
			return printEntries(cmd.OutOrStdout(), entries)
		},
	}
}

func (r *runner) saveCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Write the loaded save file and end the editing session",
		Long: `Write the loaded save file and end the editing session.

The file is written to the file it was loaded from unless an output name is given.
The existing file is renamed to *.old first.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, img, err := stash.Retrieve(r.opts.Stash)
			if err != nil {
				return err
			}

			p, opts, err := r.opts.Target(img.Platform, img.Options)
			if err != nil {
				return err
			}
			img.Platform = p
			img.Options = opts

			writeShort, writeLong := r.opts.Campaigns(p, s.WriteShort, s.WriteLong)

			path := s.Source
			if output != "" {
				path = r.path(output)
			}
			if err := fileprocessor.Encode(r.logger, img, path, writeShort, writeLong); err != nil {
				return err
			}
			return stash.Remove(r.opts.Stash)
		},
	}

	r.addFormatFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "name of the output file")
	return cmd
}
