package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	tableFile string
	walFile   string
)

var rootCmd = &cobra.Command{
	Use:   "exdb",
	Short: "A minimal persistent key-value store",
	Long: `A minimal in-process key-value store with disk persistence and a
write-ahead log for crash recovery.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("couldn't execute app,", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tableFile, "db-file", "db.txt", "Path to the table store file")
	rootCmd.PersistentFlags().StringVar(&walFile, "wal-file", "wal.txt", "Path to the write-ahead log file")

	rootCmd.AddCommand(putCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(delCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(demoCmd)
}
