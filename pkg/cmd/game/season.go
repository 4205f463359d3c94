package game

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gridrival/season-manager-go/pkg/model"
	"github.com/gridrival/season-manager-go/pkg/service"
)

func newAdvanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advance gameId phase",
		Short: "advance a game to the given phase",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			withManager(cmd.Context(),
				func(ctx context.Context, m *service.GameSessionManager) error {
					phase, err := model.ParsePhase(args[1])
					if err != nil {
						return err
					}
					g, err := m.AdvancePhase(ctx, args[0], phase)
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

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve gameId",
		Short: "resolve the season and archive the game",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			withManager(cmd.Context(),
				func(ctx context.Context, m *service.GameSessionManager) error {
					outcome, err := m.ResolveSeason(ctx, args[0])
					if err != nil {
						return err
					}
					printJSON(outcome)
					return nil
				})
		},
	}
	return cmd
}
