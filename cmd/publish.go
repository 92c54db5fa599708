package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"rhythmdeck/bucket"
	"rhythmdeck/constants"
)

var publishPrefix string

func init() {
	publishCmd.Flags().StringVar(&publishPrefix, "prefix", "", "key prefix in the bucket (default: build date)")
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publishes build artifacts to S3",
	Long:  `Uploads everything under the out directory to the PUBLISH_BUCKET S3 bucket.`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(publish())
	},
}

func publish() error {
	prefix := publishPrefix
	if prefix == "" {
		prefix = time.Now().Format("2006-01-02")
	}

	keys, err := bucket.PublishDir(constants.GetOutDir(), constants.GetPublishBucket(), prefix)
	if err != nil {
		return err
	}
	for _, key := range keys {
		fmt.Printf("Uploaded %v\n", key)
	}
	fmt.Printf("Published %v artifacts under %v/\n", len(keys), prefix)
	return nil
}
