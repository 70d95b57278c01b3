// Package s3kit is a thin, progress-aware facade over the AWS S3 SDK, bound
// to a single bucket per client.
//
// A client is built from an immutable Config validated up front, so
// configuration mistakes fail at construction rather than on first use:
//
//	client, err := s3kit.New(ctx, s3kit.Config{
//		Bucket: "my-bucket",
//		Region: "eu-west-1",
//	})
//	if err != nil {
//		return err
//	}
//
//	result, err := client.Upload(ctx, "reports/2026.pdf", file, size,
//		s3kit.WithContentType("application/pdf"),
//		s3kit.WithProgress(func(written, total int64) {
//			fmt.Printf("\r%d/%d bytes", written, total)
//		}),
//	)
//
// Uploads report progress per chunk as bytes flow toward the transport,
// either through a callback (WithProgress) or as a typed sequence on a
// channel (UploadWithProgress). Multipart uploads, request signing, and
// retries are left to the SDK.
//
// Beyond uploads the client covers download, delete, batch delete, server
// side rename, canned ACLs, metadata, paged and streaming listing, and
// folder-style operations over key prefixes.
package s3kit
