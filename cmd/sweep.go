package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lessonq/internal/logger"
	"github.com/abhisek/lessonq/internal/sweeper"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the queue sweeper over all stored users",
	Long: "Without flags, runs as a daemon that sweeps every stored progress document " +
		"on the configured interval. With --once, performs a single sweep and exits.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, orch, cfg, err := openScheduler(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		interval := time.Duration(cfg.SweepMinutes) * time.Minute
		sw := sweeper.New(orch, st.ProgressDocRepo(), cfg.Catalog(),
			cfg.BackfillPolicy(), interval, logger.New("sweeper"))

		once, _ := cmd.Flags().GetBool("once")
		if once {
			return sw.RunOnce(cmd.Context())
		}

		sw.Start()
		defer sw.Stop()
		fmt.Printf("Sweeper running every %s. Ctrl+C to stop.\n", interval)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		fmt.Println("Shutting down.")
		return nil
	},
}

func init() {
	sweepCmd.Flags().Bool("once", false, "Sweep once and exit instead of running as a daemon")
}
