package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <user>",
	Short: "Delete a user's progress document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, _, err := openScheduler(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		userID := args[0]
		track, _ := cmd.Flags().GetString("track")
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			fmt.Printf("Delete all progress for %s on track %q? [y/N] ", userID, track)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := st.ProgressDocRepo().Delete(cmd.Context(), userID, track); err != nil {
			return err
		}
		fmt.Println("Progress deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().String("track", "default", "Learning track")
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
