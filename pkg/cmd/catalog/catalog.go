package catalog

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gridrival/season-manager-go/pkg/catalog"
)

func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "commands to display the static reference data",
	}

	cmd.AddCommand(newTeamsCmd())
	cmd.AddCommand(newDriversCmd())
	cmd.AddCommand(newTracksCmd())
	cmd.AddCommand(newUpgradesCmd())

	return cmd
}

func newTeamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "list all teams",
		Run: func(cmd *cobra.Command, args []string) {
			w := newTabWriter()
			fmt.Fprintln(w, "NAME\tCAR PERFORMANCE\tBUDGET")
			for _, t := range catalog.Teams {
				fmt.Fprintf(w, "%s\t%d\t%d\n", t.Name, t.CarPerformance, t.Budget)
			}
			w.Flush()
		},
	}
}

func newDriversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drivers",
		Short: "list all drivers",
		Run: func(cmd *cobra.Command, args []string) {
			w := newTabWriter()
			fmt.Fprintln(w, "NAME\tTEAM\tSKILL\tCONSISTENCY\tPRICE")
			for _, d := range catalog.Drivers {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n",
					d.Name, d.Team, d.Skill, d.Consistency, d.Price)
			}
			w.Flush()
		},
	}
}

func newTracksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tracks",
		Short: "list all tracks",
		Run: func(cmd *cobra.Command, args []string) {
			w := newTabWriter()
			fmt.Fprintln(w, "NAME\tDIFFICULTY\tWEATHER\tOVERTAKING")
			for _, t := range catalog.Tracks {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n",
					t.Name, t.Difficulty, t.WeatherImpact, t.OvertakingDifficulty)
			}
			w.Flush()
		},
	}
}

func newUpgradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrades",
		Short: "list all upgrades",
		Run: func(cmd *cobra.Command, args []string) {
			w := newTabWriter()
			fmt.Fprintln(w, "ID\tCOST\tDESCRIPTION")
			for _, u := range catalog.Upgrades {
				fmt.Fprintf(w, "%s\t%d\t%s\n", u.ID, u.Cost, u.Description)
			}
			w.Flush()
		},
	}
}

func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
}
