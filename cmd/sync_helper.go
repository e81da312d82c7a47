package cmd

import (
	"fmt"
	"log"

	"github.com/sakethrapaka/remind/internal/model"
	"github.com/sakethrapaka/remind/internal/util"
)

// SyncWithS3 mirrors the data directory against the configured bucket.
// Local files stay the source of truth; the bucket is an archival copy.
func SyncWithS3(config model.Config, direction string) error {
	if !config.Sync.Enable {
		return fmt.Errorf("❌ Sync is disabled; enable it in config.yaml")
	}

	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	switch direction {
	case "pull":
		log.Println("🔄 Downloading metadata from S3...")

		remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to download metadata from S3: %w", err)
		}

		localMetadata, _ := util.LoadMetadata(util.MetadataPath(config))

		fileList := util.DetectChanges(localMetadata, remoteMetadata, "s3")
		if len(fileList) == 0 {
			log.Println("✅ No changes detected. Everything is up-to-date.")
		} else {
			log.Println("🔄 Downloading changed files from S3...")
			if err := util.SyncFiles(s3Client, config, "pull", fileList); err != nil {
				return fmt.Errorf("❌ Sync failed: %w", err)
			}
		}

		log.Println("🔄 Saving updated metadata...")
		if err := util.SaveMetadata(util.MetadataPath(config), remoteMetadata); err != nil {
			return fmt.Errorf("❌ Failed to save metadata: %w", err)
		}

		log.Println("✅ Sync completed successfully.")
		return nil

	case "push":
		log.Println("🔄 Generating metadata for push...")

		localMetadata, err := util.GenerateMetadata(config.DataDir)
		if err != nil {
			return fmt.Errorf("❌ Failed to generate metadata: %w", err)
		}

		if err := util.SaveMetadata(util.MetadataPath(config), localMetadata); err != nil {
			return fmt.Errorf("❌ Failed to save metadata: %w", err)
		}

		remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to download metadata from S3: %w", err)
		}

		fileList := util.DetectChanges(localMetadata, remoteMetadata, "local")
		if len(fileList) == 0 {
			log.Println("✅ No changes detected. Everything is up-to-date.")
		} else {
			log.Println("🔄 Uploading changed files to S3...")
			if err := util.SyncFiles(s3Client, config, "push", fileList); err != nil {
				return fmt.Errorf("❌ Sync failed: %w", err)
			}
		}

		log.Println("🔄 Uploading metadata to S3...")
		if err := util.UploadMetadataToS3(s3Client, config); err != nil {
			return fmt.Errorf("❌ Failed to upload metadata: %w", err)
		}

		log.Println("✅ Sync completed successfully.")
		return nil
	}

	return fmt.Errorf("❌ Invalid sync direction: %s", direction)
}

// ShowSyncStatus prints which files would move on push or pull.
func ShowSyncStatus(config model.Config) error {
	if !config.Sync.Enable {
		return fmt.Errorf("❌ Sync is disabled; enable it in config.yaml")
	}

	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	localMetadata, err := util.GenerateMetadata(config.DataDir)
	if err != nil {
		return fmt.Errorf("❌ Failed to generate metadata: %w", err)
	}

	remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
	if err != nil {
		return fmt.Errorf("❌ Failed to download metadata from S3: %w", err)
	}

	toPush := util.DetectChanges(localMetadata, remoteMetadata, "local")
	toPull := util.DetectChanges(localMetadata, remoteMetadata, "s3")

	if len(toPush) == 0 && len(toPull) == 0 {
		fmt.Println("✅ Local data and S3 are in sync.")
		return nil
	}

	if len(toPush) > 0 {
		fmt.Println("⬆️  Would push:")
		for _, file := range toPush {
			fmt.Println("   ", file)
		}
	}
	if len(toPull) > 0 {
		fmt.Println("⬇️  Would pull:")
		for _, file := range toPull {
			fmt.Println("   ", file)
		}
	}
	return nil
}
