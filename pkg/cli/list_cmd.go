package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"items-app-api/core/presentation"
)

// ErrLoadFailed is returned by list when the view model ends in the error state
var ErrLoadFailed = errors.New("failed to load items")

func NewListCmd(deps *Deps) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "load the item list, downloading it when the cache is empty",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vm := deps.Client.NewViewModel()
			defer vm.Close()

			select {
			case <-vm.RequestData(cmd.Context()):
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}

			state := vm.State()
			if asJSON {
				if err := writeJSON(cmd.OutOrStdout(), state); err != nil {
					return err
				}
			} else {
				writeText(cmd.OutOrStdout(), state)
			}

			if state.Status == presentation.StatusError {
				return fmt.Errorf("%w: %s", ErrLoadFailed, state.Message)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the final state as JSON")
	return cmd
}

func writeText(w io.Writer, state presentation.UiState) {
	switch state.Status {
	case presentation.StatusSuccess:
		if len(state.Items) == 0 {
			fmt.Fprintln(w, "no items")
			return
		}
		for _, item := range state.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\n", item.ID, item.Title, item.Description)
		}
	case presentation.StatusError:
		fmt.Fprintf(w, "error: %s\n", state.Message)
	default:
		fmt.Fprintln(w, state.Status.String())
	}
}

func writeJSON(w io.Writer, state presentation.UiState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Status string `json:"status"`
		presentation.UiState
	}{
		Status:  state.Status.String(),
		UiState: state,
	})
}
