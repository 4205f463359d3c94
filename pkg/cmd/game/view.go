package game

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gridrival/season-manager-go/pkg/model"
	"github.com/gridrival/season-manager-go/pkg/service"
)

var listArchived bool

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list game sessions",
		Run: func(cmd *cobra.Command, args []string) {
			withManager(cmd.Context(),
				func(ctx context.Context, m *service.GameSessionManager) error {
					var games []*model.Game
					var err error
					if listArchived {
						games, err = m.ListArchived(ctx)
					} else {
						games, err = m.ListActive(ctx)
					}
					if err != nil {
						return err
					}
					printGameList(games)
					return nil
				})
		},
	}
	cmd.Flags().BoolVar(&listArchived, "archived", false,
		"list archived games instead of active ones")
	return cmd
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show gameId",
		Short: "show a single game session",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			withManager(cmd.Context(),
				func(ctx context.Context, m *service.GameSessionManager) error {
					g, err := m.Get(ctx, args[0])
					if err != nil {
						return err
					}
					printGame(g)
					return nil
				})
		},
	}
	return cmd
}
