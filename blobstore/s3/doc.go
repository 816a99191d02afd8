// Package s3 provides an S3 implementation of the blobstore.BlobStore
// interface.
//
// # Usage
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket",
//	    s3.WithPrefix("pictures/"),
//	    s3.WithURLExpiry(15*time.Minute),
//	)
//
// # Features
//
//   - Fresh object name per upload (uuid + extension); never overwrites
//   - Managed uploads via the S3 transfer manager
//   - Presigned GET URLs so the bucket can stay private
//   - Configurable prefix for multi-tenant isolation
package s3
