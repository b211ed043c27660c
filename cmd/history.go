package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lessonq/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history <user>",
	Short: "Show the user's schedule event log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, _, err := openScheduler(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		track, _ := cmd.Flags().GetString("track")
		limit, _ := cmd.Flags().GetInt("limit")
		after, _ := cmd.Flags().GetInt64("after")

		events, err := st.EventRepo().QueryScheduleEvents(cmd.Context(), args[0], track,
			store.QueryOpts{Limit: limit, After: after})
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No schedule events recorded.")
			return nil
		}

		for _, ev := range events {
			line := fmt.Sprintf("#%d %s %s day=%s", ev.Sequence,
				ev.Timestamp.UTC().Format("2006-01-02 15:04:05"), ev.Kind, ev.Day)
			if len(ev.LessonNos) > 0 {
				line += " lessons=" + joinInts(ev.LessonNos)
			}
			if ev.RunID != "" {
				line += " run=" + ev.RunID
			}
			fmt.Println(line)
		}
		return nil
	},
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ",")
}

func init() {
	historyCmd.Flags().String("track", "default", "Learning track")
	historyCmd.Flags().Int("limit", 50, "Maximum events to show (0 = all)")
	historyCmd.Flags().Int64("after", 0, "Only events with sequence greater than this")
}
