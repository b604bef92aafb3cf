package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"exdb/internal/db"
	kverrors "exdb/internal/errors"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a short demonstration sequence against the store",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	store, err := db.Open(tableFile, walFile)
	if err != nil {
		return err
	}

	if err := store.Put("name", "Alice"); err != nil {
		return err
	}
	if err := store.Put("age", "30"); err != nil {
		return err
	}

	for _, key := range []string{"name", "age"} {
		value, err := store.Get(key)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", key, value)
	}

	if err := store.Remove("name"); err != nil {
		return err
	}
	if _, err := store.Get("name"); kverrors.IsNotFound(err) {
		fmt.Println("name after deletion: not found")
	} else if err != nil {
		return err
	}

	return store.MergeLogs()
}
