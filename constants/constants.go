package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetBankPath() string {
	path := os.Getenv("BANK_PATH")
	if path != "" {
		return path
	}
	return "rhythms.txt"
}

func GetTilesDir() string {
	path := os.Getenv("TILES_PATH")
	if path != "" {
		return path
	}
	return "tiles_svg"
}

func GetAWSRegion() string {
	region := os.Getenv("AWS_REGION")
	if region != "" {
		return region
	}
	return "us-east-1"
}

func GetPublishBucket() string {
	bucket := os.Getenv("PUBLISH_BUCKET")
	if bucket == "" {
		panic("PUBLISH_BUCKET environment variable is not set!")
	}
	return bucket
}

// Artifact filenames under the out dir.
const (
	PoolsConfigFile = "config_pools.json"
	DeckRawFile     = "deck_raw.json"
	DeckOrderFile   = "deck_order.json"
	PoolsFile       = "pools.json"
	CallSheetFile   = "call_sheet.txt"
	DeckQCJSONFile  = "deck_qc.json"
	DeckQCCSVFile   = "deck_qc.csv"
	PreviewSMFFile  = "bank_preview.mid"
)
