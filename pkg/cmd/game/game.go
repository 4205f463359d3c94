package game

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridrival/season-manager-go/log"
	"github.com/gridrival/season-manager-go/pkg/config"
	"github.com/gridrival/season-manager-go/pkg/db/postgres"
	"github.com/gridrival/season-manager-go/pkg/model"
	"github.com/gridrival/season-manager-go/pkg/service"
	"github.com/gridrival/season-manager-go/pkg/utils"
)

func NewGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "commands to manage game sessions",
	}

	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newJoinCmd())
	cmd.AddCommand(newSelectTeamCmd())
	cmd.AddCommand(newSelectDriversCmd())
	cmd.AddCommand(newUpgradeCmd())
	cmd.AddCommand(newAdvanceCmd())
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newDeleteCmd())

	return cmd
}

//nolint:whitespace // can't make both editor and linter happy
func withManager(
	ctx context.Context,
	fn func(ctx context.Context, m *service.GameSessionManager) error,
) {
	// wait for database
	timeout, err := time.ParseDuration(config.WaitForServices)
	if err != nil {
		log.Warn("Invalid duration value. Setting default 60s", log.ErrorField(err))
		timeout = 60 * time.Second
	}
	postgresAddr := utils.ExtractFromDBURL(config.DB)
	if err = utils.WaitForTCP(postgresAddr, timeout); err != nil {
		log.Fatal("database  not ready", log.ErrorField(err))
	}
	pool := postgres.InitWithURL(config.DB)
	defer pool.Close()

	m := service.NewGameSessionManager(service.WithPool(pool))
	if err = fn(ctx, m); err != nil {
		log.Fatal("command failed", log.ErrorField(err))
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Error("could not print result", log.ErrorField(err))
	}
}

func printGame(g *model.Game) {
	printJSON(g)
}

func printGameList(games []*model.Game) {
	for _, g := range games {
		line := fmt.Sprintf("%s  %-20s  %-16s  players=%d",
			g.ID, g.Name, g.Phase, len(g.Players))
		if g.CompletedAt != nil {
			line = fmt.Sprintf("%s  completed=%s",
				line, g.CompletedAt.Format(time.RFC3339))
		}
		fmt.Println(line)
	}
}
