package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lessonq/internal/progress"
)

var queueCmd = &cobra.Command{
	Use:   "queue <user>",
	Short: "Show the user's current lesson queue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, _, err := openScheduler(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		userID := args[0]
		track, _ := cmd.Flags().GetString("track")

		rec, err := st.ProgressDocRepo().Load(cmd.Context(), userID, track)
		if err != nil {
			return err
		}
		if rec == nil {
			fmt.Printf("No progress recorded for %s on track %q.\n", userID, track)
			return nil
		}

		doc := progress.Normalize(rec.Raw)
		fmt.Printf("%s / %s  level=%s quota=%d revision=%d day=%s\n",
			rec.UserID, rec.Track, rec.Level, rec.Quota, rec.Revision, doc.CurrentDay)
		if len(doc.Current) == 0 {
			fmt.Println("  queue is empty")
		}
		for _, cur := range doc.Current {
			fmt.Printf("  lesson %d (%s)\n", cur.LessonNo, cur.Day)
		}
		fmt.Printf("  completed: %d  failed: %d\n", len(doc.Completed), len(doc.Failed))
		return nil
	},
}

func init() {
	queueCmd.Flags().String("track", "default", "Learning track")
}
