package game

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridrival/season-manager-go/pkg/service"
)

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create name creator",
		Short: "create a new game session",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			withManager(cmd.Context(),
				func(ctx context.Context, m *service.GameSessionManager) error {
					g, err := m.Create(ctx, args[0], args[1])
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

func newJoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join gameId username",
		Short: "join an existing game session",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			withManager(cmd.Context(),
				func(ctx context.Context, m *service.GameSessionManager) error {
					g, err := m.Join(ctx, args[0], args[1])
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

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete gameId",
		Short: "delete an active game session",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			withManager(cmd.Context(),
				func(ctx context.Context, m *service.GameSessionManager) error {
					deleted, err := m.Delete(ctx, args[0])
					if err != nil {
						return err
					}
					if deleted {
						fmt.Printf("game %s deleted\n", args[0])
					} else {
						fmt.Printf("game %s not found\n", args[0])
					}
					return nil
				})
		},
	}
	return cmd
}
