package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/easeboard/easeboard/pkg/vault"
)

// dataKeyGenerateCmd represents the data-key > generate command
var dataKeyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a data encryption key",
	Long: `
Generate a data encryption key

Use this command to generate a new Base64-encoded 256 bit data encryption key. Once generated, this key should be placed into the environment of
the EaseBoard server. It will be used to encrypt every Canvas API token stored in the database.

Example:

$ export EASEBOARD_DATA_KEY="$(easectl data-key generate)"
`,
	Run: func(cmd *cobra.Command, args []string) {
		key, err := vault.GenerateDataKey()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to generate key:", err)
			os.Exit(1)
		}
		fmt.Printf("%s", key)
	},
}

func init() {
	dataKeyCmd.AddCommand(dataKeyGenerateCmd)
}
