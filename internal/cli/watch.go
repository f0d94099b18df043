package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/save"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/slot"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/watcher"
	"github.com/spf13/cobra"
)

func (r *runner) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Print the save slots of a file every time it changes",
		Long: `Print the save slots of a file every time it changes.

Useful while playing: the slots are printed again whenever the emulator or game
writes the save file. Stop with Ctrl+C.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := watcher.New(r.logger)
			out := cmd.OutOrStdout()

			err := w.Watch(cmd.Context(), r.path(args[0]), func(img *save.SaveImage) {
				if err := printSlots(out, img); err != nil {
					r.logger.Error(err.Error())
				}
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

// printSlots prints one line per played slot of every campaign with data.
func printSlots(w io.Writer, img *save.SaveImage) error {
	if _, err := fmt.Fprintf(w, "%s save\n", img.Platform); err != nil {
		return err
	}

	for _, kind := range []section.Kind{section.ShortForm, section.LongForm} {
		if !img.HasSection(kind) {
			continue
		}

		for i := range section.LayoutOf(kind).Slots {
			line, err := slotLine(img, kind, i)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "  %-5s %d  %s\n", kind, i+1, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func slotLine(img *save.SaveImage, kind section.Kind, index int) (string, error) {
	if kind == section.ShortForm {
		s, err := img.ShortSlot(index)
		if err != nil || s.IsNew {
			return "new", err
		}
		if s.IsClear {
			return fmt.Sprintf("%s, clear, %d emeralds", s.Character, s.NumEmeralds), nil
		}
		return fmt.Sprintf("%s, %s, %d emeralds", s.Character,
			section.ZoneName(kind, s.Zone), s.NumEmeralds), nil
	}

	s, err := img.LongSlot(index)
	if err != nil || s.IsNew {
		return "new", err
	}
	collected, super := s.EmeraldCounts()
	where := section.ZoneName(kind, s.Zone)
	if s.Clear != slot.NotCleared {
		where = s.Clear.String()
	}
	return fmt.Sprintf("%s, %s, %d emeralds (%d super), %d lives",
		s.Character, where, collected, super, s.Lives), nil
}
