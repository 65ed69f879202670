package cmd

import (
	"github.com/dharanetra/dhara/internal/app"
	"github.com/dharanetra/dhara/internal/screen"
	"github.com/spf13/cobra"
)

// runApp opens the store and launches the TUI. Without a database the app
// still runs; saving and history are disabled.
func runApp(cmd *cobra.Command) error {
	project, _ := cmd.Flags().GetString("project")
	reportDir, _ := cmd.Flags().GetString("report-dir")

	env := screen.Env{
		Project:   project,
		ReportDir: reportDir,
		Logger:    logger,
	}

	st, err := openStore(cmd)
	if err != nil {
		logger.Warn("history unavailable", "error", err)
	} else {
		defer st.Close()
		env.History = st.HistoryRepo()
	}

	return app.Run(env)
}
