package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"exdb/internal/db"
	kverrors "exdb/internal/errors"
)

var putCmd = &cobra.Command{
	Use:   "put <key> <value>",
	Short: "Insert or update a key-value pair",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := db.Open(tableFile, walFile)
		if err != nil {
			return err
		}
		return store.Put(args[0], args[1])
	},
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Retrieve the value for a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := db.Open(tableFile, walFile)
		if err != nil {
			return err
		}
		value, err := store.Get(args[0])
		if err != nil {
			if kverrors.IsNotFound(err) {
				fmt.Println("Key not found")
				return nil
			}
			return err
		}
		fmt.Println(value)
		return nil
	},
}

var delCmd = &cobra.Command{
	Use:   "del <key>",
	Short: "Remove a key-value pair",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := db.Open(tableFile, walFile)
		if err != nil {
			return err
		}
		return store.Remove(args[0])
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge the write-ahead log into the table store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := db.Open(tableFile, walFile)
		if err != nil {
			return err
		}
		if err := store.MergeLogs(); err != nil {
			return err
		}
		fmt.Printf("merged %d entries\n", store.Len())
		return nil
	},
}
