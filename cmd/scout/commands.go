package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	appconsistency "github.com/preston-bernstein/fantasy-hoops-service/internal/app/consistency"
	apprankings "github.com/preston-bernstein/fantasy-hoops-service/internal/app/rankings"
	appschedule "github.com/preston-bernstein/fantasy-hoops-service/internal/app/schedule"
	appstandings "github.com/preston-bernstein/fantasy-hoops-service/internal/app/standings"
	appstrategy "github.com/preston-bernstein/fantasy-hoops-service/internal/app/strategy"
	domainrankings "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	domainschedule "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers/snapshot"
)

func newRankingsCmd(c *cli) *cobra.Command {
	var (
		sortKey string
		asc     bool
		limit   int
		expand  int
	)
	cmd := &cobra.Command{
		Use:   "rankings",
		Short: "Print the player rankings table",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			table := apprankings.NewTable(c.source, appconsistency.NewCache(c.source, c.logger, nil), c.logger)
			if err := table.Load(ctx); err != nil {
				return err
			}
			if sortKey != "" {
				key, ok := domainrankings.ParseKey(sortKey)
				if !ok {
					return fmt.Errorf("unknown sort key %q", sortKey)
				}
				table.SetSort(key)
				if asc {
					table.SetSort(key)
				}
			}
			if expand > 0 {
				if _, err := table.ToggleExpand(ctx, expand); err != nil {
					return err
				}
				if err := table.AwaitExpanded(ctx); err != nil {
					return err
				}
			}
			return printRankings(cmd.OutOrStdout(), table.View(), limit)
		},
	}
	cmd.Flags().StringVar(&sortKey, "sort", "", "sort key (PTS, REB, AST, FG3M, STL, BLK, FG_PCT, FT_PCT, TOV, TOTAL_Z, MIN, RANK)")
	cmd.Flags().BoolVar(&asc, "asc", false, "sort ascending instead of descending")
	cmd.Flags().IntVar(&limit, "limit", 25, "maximum rows to print; 0 prints all")
	cmd.Flags().IntVar(&expand, "expand", 0, "player id whose consistency detail to print")
	return cmd
}

func printRankings(out io.Writer, view apprankings.View, limit int) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	header := []string{"RANK", "PLAYER", "TEAM", "MIN"}
	for _, key := range domainrankings.Categories {
		header = append(header, string(key))
	}
	header = append(header, "VALUE")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	var detail *apprankings.Detail
	for i, row := range view.Rows {
		if limit > 0 && i >= limit {
			break
		}
		cols := []string{strconv.Itoa(row.Rank), row.Name, row.Team, row.Minutes}
		for _, key := range domainrankings.Categories {
			cols = append(cols, row.Stats[string(key)])
		}
		cols = append(cols, row.Value)
		fmt.Fprintln(tw, strings.Join(cols, "\t"))
		if row.Detail != nil {
			detail = row.Detail
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if view.Warning != "" {
		fmt.Fprintln(out, "warning:", view.Warning)
	}
	if view.Sort.Key != "" {
		fmt.Fprintf(out, "sorted by %s %s, %d players\n", view.Sort.Key, view.Sort.Direction, view.Count)
	}
	if detail != nil {
		printDetail(out, detail)
	}
	return nil
}

func printDetail(out io.Writer, d *apprankings.Detail) {
	if d.Status != appconsistency.StatusReady {
		fmt.Fprintln(out, "consistency:", d.Message)
		return
	}
	fmt.Fprintf(out, "consistency: grade %s (%s), %d games\n", d.Grade, d.GradeClass, d.GamesAnalyzed)
	if d.RecentPoints != "" {
		fmt.Fprintf(out, "recent: %s pts, %s min\n", d.RecentPoints, d.RecentMinutes)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CAT\tSTD\tCV\tRATING")
	for _, v := range d.Volatility {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%s\n", v.Category, v.Std, v.CV, v.Rating)
	}
	_ = tw.Flush()
}

func newScheduleCmd(c *cli) *cobra.Command {
	var (
		window    string
		highlight int
	)
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print matchups and game-count advantages for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, ok := domainschedule.ParseWindow(window)
			if !ok {
				return fmt.Errorf("invalid window %q (expected current or upcoming)", window)
			}
			view := appschedule.NewView(c.source, c.logger, nil)
			page, err := view.Select(cmd.Context(), domainschedule.Query{Window: w, Highlight: highlight})
			if err != nil {
				return err
			}
			return printSchedule(cmd.OutOrStdout(), page)
		},
	}
	cmd.Flags().StringVar(&window, "window", "current", "matchup window: current or upcoming")
	cmd.Flags().IntVar(&highlight, "highlight", 0, "fantasy team id to mark")
	return cmd
}

func printSchedule(out io.Writer, page appschedule.Page) error {
	fmt.Fprintf(out, "period %d: %s to %s\n", page.Period, page.Start, page.End)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tHOME\tGAMES\tAWAY\tGAMES\tEDGE")
	for _, m := range page.Matchups {
		mark := ""
		if m.IsMine {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%s\n", mark, m.Home.Name, m.Home.Total, m.Away.Name, m.Away.Total, m.Advantage.Label)
	}
	return tw.Flush()
}

func newStrategyCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "strategy TEAM_ID",
		Short: "Print the roster composition insight for a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := strconv.Atoi(args[0])
			if err != nil || teamID <= 0 {
				return fmt.Errorf("invalid team id %q", args[0])
			}
			insight, err := appstrategy.NewService(c.source, c.logger).Insight(cmd.Context(), teamID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d guards, %d forwards, %d centers)\n",
				insight.Title, insight.Counts.Guards, insight.Counts.Forwards, insight.Counts.Centers)
			fmt.Fprintln(out, "strength:", insight.Strength)
			fmt.Fprintln(out, "punt:", insight.Punt)
			fmt.Fprintln(out, insight.WinStrategy)
			return nil
		},
	}
}

func newStandingsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Print the league standings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := appstandings.NewService(c.source, c.logger).Standings(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if view.League.Name != "" {
				fmt.Fprintf(out, "%s, season %d\n", view.League.Name, view.League.Season)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RANK\tTEAM\tOWNER\tW-L-T\tWIN%")
			for _, row := range view.Rows {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", row.Rank, row.Name, row.Owner, row.Record, row.WinPct)
			}
			return tw.Flush()
		},
	}
}

func newExportCmd(c *cli) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write snapshot files for everything the source serves",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = c.cfg.Provider.SnapshotDir
			}
			sum, err := snapshot.NewExporter(c.source, snapshot.NewWriter(dir), c.logger).Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"exported to %s: %d rankings, %d records (%d missing, %d failed), %d windows, %d teams, %d standings, %d rosters in %s\n",
				dir, sum.Rankings, sum.Records, sum.RecordsMissing, sum.RecordsFailed, sum.Windows, sum.Teams, sum.Standings, sum.Rosters, sum.Duration)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "snapshot directory (default from SNAPSHOT_DIR)")
	return cmd
}
