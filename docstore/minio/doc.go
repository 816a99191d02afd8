// Package minio provides a DocumentStore implementation using the MinIO
// client.
//
// MinIO is a high-performance, S3-compatible object storage system; the
// same client also works against Ceph, SeaweedFS, and Garage. Object
// paths stand in for the hierarchical file-share layout of the original
// deployment target.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := miniodoc.NewStore(client, "documents", "charity/")
//
// CreateOnce checks for an existing object before writing. The check
// and the write are not one atomic operation against the backend; the
// store prevents accidental overwrites, not adversarial races on the
// same name.
package minio
