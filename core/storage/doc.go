// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the dataset can be published to and loaded
// from an S3 compatible bucket. One object per revision is stored under a
// configurable prefix, e.g. divisions/mca/201904.tsv.
//
// The Client interface exists so loaders can be tested against the testify
// mock in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
