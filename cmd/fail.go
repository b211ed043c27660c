package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var failCmd = &cobra.Command{
	Use:   "fail <user> <lesson>",
	Short: "Record a lesson as failed",
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

		if err := orch.RecordFailure(cmd.Context(), args[0], track, lessonNo, level, time.Now()); err != nil {
			return err
		}
		fmt.Printf("Lesson %d marked failed.\n", lessonNo)
		return nil
	},
}

func init() {
	failCmd.Flags().String("track", "default", "Learning track")
	failCmd.Flags().String("level", "", "Proficiency level (defaults to the stored one)")
}
