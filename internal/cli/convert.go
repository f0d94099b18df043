package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/field"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/fileprocessor"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/loader"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/platform"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/save"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/verification"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
)

func (r *runner) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Show the format and contents of a save file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loader.New(r.logger).Load(r.path(args[0]))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "platform:   %s\n", img.Platform)
			if img.Platform == platform.Console {
				fmt.Fprintf(w, "data size:  %s\n", img.Options.DataSize)
				fmt.Fprintf(w, "byte order: %s\n", img.Options.ByteOrder)
				fmt.Fprintf(w, "filler:     0x%02x\n", img.Options.FillerByte)
			}
			for _, kind := range section.Kinds {
				state := "valid"
				if !img.HasSection(kind) {
					state = "empty"
				}
				fmt.Fprintf(w, "%-11s %s\n", kind.String()+":", state)
			}
			fmt.Fprintln(w)

			entries, err := field.Dump(img)
			if err != nil {
				return err
			}
			return printEntries(w, entries)
		},
	}
}

func (r *runner) convertCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert [FILE]",
		Short: "Convert a save file to another platform",
		Long: `Convert a save file to another platform.

Without an output name the file is written next to the input, named the way the
target platform expects it. An existing output file is renamed to *.old first.`,
		Args: rangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && r.opts.Batch == "" {
				return &UsageError{cmd: cmd, msg: "convert expects a file or a batch pattern"}
			}
			if len(args) == 1 {
				r.opts.Input = r.path(args[0])
			}
			r.opts.Output = output
			return r.convert()
		},
	}

	r.addFormatFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "name of the output file")
	cmd.Flags().StringVar(&r.opts.Batch, "batch", "", "convert all files matching the pattern, for example *.srm")
	cmd.Flags().BoolVar(&r.opts.Verify, "verify", false, "decode the output and compare it with the input")
	return cmd
}

func (r *runner) convert() error {
	files, err := fileprocessor.GetFilesToProcess(&r.opts)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match '%s'", r.opts.Batch)
	}

	fileprocessor.PrintBanner(r.logger, r.opts, r.build.Version, r.build.Commit, r.build.Date)

	processor := fileprocessor.New(r.logger)
	var failed int
	for _, file := range files {
		opts := r.opts
		opts.Input = file
		if len(files) > 1 {
			opts.Output = ""
		}

		if _, err := processor.ProcessFile(opts); err != nil {
			if len(files) == 1 {
				return err
			}
			r.logger.Error("Converting failed", log.String("file", file), log.Err(err))
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to convert", failed, len(files))
	}
	return nil
}

func (r *runner) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE...",
		Short: "Check that save files are re-encoded byte for byte",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &UsageError{cmd: cmd, msg: "verify expects at least one file"}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, name := range args {
				path := r.path(name)
				data, err := os.ReadFile(path)
				if err == nil {
					err = verification.RoundTrip(r.logger, data)
				}
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}
			return errors.Join(errs...)
		},
	}
}

func (r *runner) newCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a save file with all slots unused",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, opts, err := r.opts.Target(platform.Console, platform.DefaultOptions())
			if err != nil {
				return err
			}

			img := save.New(p, opts)
			writeShort, writeLong := r.opts.Campaigns(p, true, true)
			if output == "" {
				output = platform.DefaultFilename(p, writeLong)
			}
			return fileprocessor.Encode(r.logger, img, r.path(output), writeShort, writeLong)
		},
	}

	r.addFormatFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "name of the output file")
	return cmd
}

func (r *runner) hexCommand() *cobra.Command {
	var canonical bool

	cmd := &cobra.Command{
		Use:   "hex FILE",
		Short: "Print a hex dump of a save file as it would be written",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loader.New(r.logger).Load(r.path(args[0]))
			if err != nil {
				return err
			}

			data, err := r.encode(img)
			if err != nil {
				return err
			}
			if canonical {
				data = img.File()
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), hex.Dump(data))
			return err
		},
	}

	r.addFormatFlags(cmd)
	cmd.Flags().BoolVar(&canonical, "canonical", false, "dump the 512 byte canonical buffer instead of the file")
	return cmd
}

// encode converts an image to the target format of the options, using the campaigns
// present in the image unless the options select them.
func (r *runner) encode(img *save.SaveImage) ([]byte, error) {
	hadShort, hadLong := img.FillDefaults()

	p, opts, err := r.opts.Target(img.Platform, img.Options)
	if err != nil {
		return nil, err
	}
	img.Platform = p
	img.Options = opts

	writeShort, writeLong := r.opts.Campaigns(p, hadShort, hadLong)
	return img.Encode(writeShort, writeLong)
}
