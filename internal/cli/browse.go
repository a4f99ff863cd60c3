package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Alp4ka/tableview/internal/tui"
)

var errNotTerminal = errors.New("browse needs an interactive terminal, use list instead")

func newBrowseCmd(a *app) *cobra.Command {
	var flags tableFlags

	cmd := &cobra.Command{
		Use:   "browse <dataset>",
		Short: "Browse a dataset interactively",
		Long: "Open a dataset in the terminal browser. Move between columns with ←/→, " +
			"sort with s, page with pgup/pgdown and search with /. " +
			"The state token of the last view is printed on exit.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, ok := cmd.OutOrStdout().(*os.File)
			if !ok || !isTerminal(out) {
				return errNotTerminal
			}

			d, t, err := a.openTable(cmd, args[0], flags)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			p := tea.NewProgram(
				tui.New(ctx, d, t, a.printer),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(out),
				tea.WithAltScreen(),
			)

			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("running browser: %w", err)
			}

			if m, ok := final.(tui.Model); ok {
				zerolog.Ctx(ctx).Debug().Str("dataset", d.Name).Msg("browser closed")
				fmt.Fprintln(out, "state: "+m.Table().State().String())
			}

			return nil
		},
	}

	flags.bind(cmd)

	return cmd
}
