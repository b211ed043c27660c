package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <user> <lesson>",
	Short: "Record a lesson as completed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, orch, _, err := openScheduler(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		lessonNo, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("lesson number %q: %w", args[1], err)
		}
		track, _ := cmd.Flags().GetString("track")
		level, _ := cmd.Flags().GetString("level")

		if err := orch.RecordCompletion(cmd.Context(), args[0], track, lessonNo, level, time.Now()); err != nil {
			return err
		}
		fmt.Printf("Lesson %d completed.\n", lessonNo)
		return nil
	},
}

func init() {
	completeCmd.Flags().String("track", "default", "Learning track")
	completeCmd.Flags().String("level", "", "Proficiency level (defaults to the stored one)")
}
