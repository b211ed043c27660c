package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lessonq/internal/queue"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule <user>",
	Short: "Ensure the user's daily lesson queue",
	Long: "Rolls over stale assignments, backfills skipped days, and assigns today's lessons. " +
		"Running it again on the same day with no new activity is a no-op.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, orch, cfg, err := openScheduler(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		userID := args[0]
		track, _ := cmd.Flags().GetString("track")
		level, _ := cmd.Flags().GetString("level")
		quota, _ := cmd.Flags().GetInt("quota")
		today, _ := cmd.Flags().GetString("today")
		if quota == 0 {
			quota = cfg.Quota
		}

		rng, ok := cfg.Catalog().Range(level)
		if !ok {
			return fmt.Errorf("unknown level %q", level)
		}

		res, err := orch.EnsureDailyQueue(cmd.Context(), userID, track,
			queue.Params{Range: rng, Quota: quota, Level: level},
			queue.Options{Today: today, Backfill: cfg.BackfillPolicy()})
		if err != nil {
			return err
		}

		if res.Wrote {
			fmt.Printf("Queue updated (revision %d, %s).\n", res.Revision, res.Reason)
		} else {
			fmt.Printf("Queue already up to date (revision %d, %s).\n", res.Revision, res.Reason)
		}
		for _, cur := range res.Current {
			fmt.Printf("  lesson %d (%s)\n", cur.LessonNo, cur.Day)
		}
		if len(res.Current) == 0 {
			fmt.Println("  no lessons queued for today")
		}
		return nil
	},
}

func init() {
	scheduleCmd.Flags().String("track", "default", "Learning track")
	scheduleCmd.Flags().String("level", "beginner", "Proficiency level selecting the lesson range")
	scheduleCmd.Flags().Int("quota", 0, "Daily lesson quota (0 = configured default)")
	scheduleCmd.Flags().String("today", "", "Override the study-day (YYYY-MM-DD, for testing)")
}
