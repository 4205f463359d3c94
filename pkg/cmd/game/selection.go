package game

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gridrival/season-manager-go/pkg/service"
)

func newSelectTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select-team gameId username team",
		Short: "pick a team for a player",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			withManager(cmd.Context(),
				func(ctx context.Context, m *service.GameSessionManager) error {
					g, err := m.SelectTeam(ctx, args[0], args[1], args[2])
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

func newSelectDriversCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select-drivers gameId team driver1 driver2",
		Short: "pick the driver pair for a team",
		Args:  cobra.ExactArgs(4),
		Run: func(cmd *cobra.Command, args []string) {
			withManager(cmd.Context(),
				func(ctx context.Context, m *service.GameSessionManager) error {
					g, err := m.SelectDrivers(ctx, args[0], args[1],
						[2]string{args[2], args[3]})
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

func newUpgradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade gameId team upgradeId",
		Short: "apply the pre-season upgrade for a team",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			withManager(cmd.Context(),
				func(ctx context.Context, m *service.GameSessionManager) error {
					g, err := m.ApplyUpgrade(ctx, args[0], args[1], args[2])
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
