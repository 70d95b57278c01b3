package s3kit_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/halcyonlabs/s3kit"
	"github.com/halcyonlabs/s3kit/s3types"
)

func ExampleNew() {
	ctx := context.Background()

	client, err := s3kit.New(ctx, s3kit.Config{
		Bucket: "my-bucket",
		Region: "eu-west-1",
	})
	if err != nil {
		log.Fatal(err)
	}

	data := "hello, s3kit"
	_, err = client.Upload(ctx, "greetings/hello.txt", strings.NewReader(data), int64(len(data)),
		s3kit.WithContentType("text/plain"),
	)
	if err != nil {
		log.Fatal(err)
	}
}

func ExampleClient_Upload_progress() {
	ctx := context.Background()

	client, err := s3kit.New(ctx, s3kit.Config{Bucket: "my-bucket"})
	if err != nil {
		log.Fatal(err)
	}

	payload := strings.Repeat("x", 1<<20)
	_, err = client.Upload(ctx, "large.bin", strings.NewReader(payload), int64(len(payload)),
		s3kit.WithProgress(func(written, total int64) {
			fmt.Printf("\r%d%%", written*100/total)
		}),
	)
	if err != nil {
		log.Fatal(err)
	}
}

func ExampleClient_UploadWithProgress() {
	ctx := context.Background()

	client, err := s3kit.New(ctx, s3kit.Config{Bucket: "my-bucket"})
	if err != nil {
		log.Fatal(err)
	}

	payload := strings.Repeat("x", 1<<20)
	for p := range client.UploadWithProgress(ctx, "large.bin", strings.NewReader(payload), int64(len(payload))) {
		switch v := p.(type) {
		case s3types.UploadInProgress:
			fmt.Printf("\r%d/%d bytes", v.BytesWritten, v.TotalBytes)
		case s3types.UploadCompleted:
			fmt.Printf("\ndone, etag %s\n", v.ETag)
		case s3types.UploadFailed:
			log.Fatal(v.Cause)
		}
	}
}

func ExampleClient_UploadFolder() {
	ctx := context.Background()

	client, err := s3kit.New(ctx, s3kit.Config{Bucket: "my-bucket", Concurrency: 8})
	if err != nil {
		log.Fatal(err)
	}

	result, err := client.UploadFolder(ctx, "./dist", "releases/v1.2.3")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("uploaded %d files, %d failures\n", len(result.Keys), len(result.Errors))
}
