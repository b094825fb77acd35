package gcs_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/cmseval/pkg/service/gcs"
)

func TestParseURL(t *testing.T) {
	t.Run("valid URL", func(t *testing.T) {
		obj, err := gcs.ParseURL("gs://reports/cms/2025/eval.json")
		gt.NoError(t, err).Required()
		gt.Value(t, obj.Bucket).Equal("reports")
		gt.Value(t, obj.Name).Equal("cms/2025/eval.json")
		gt.Value(t, obj.String()).Equal("gs://reports/cms/2025/eval.json")
	})

	invalid := []string{
		"reports/eval.json",
		"s3://reports/eval.json",
		"gs://",
		"gs://reports",
		"gs://reports/",
		"gs:///eval.json",
		"gs://reports/dir/",
	}
	for _, raw := range invalid {
		t.Run("rejects "+raw, func(t *testing.T) {
			_, err := gcs.ParseURL(raw)
			gt.Error(t, err).Is(gcs.ErrInvalidURL)
		})
	}
}

func TestIsURL(t *testing.T) {
	gt.Bool(t, gcs.IsURL("gs://bucket/obj")).True()
	gt.Bool(t, gcs.IsURL("./out/report.md")).False()
}

func TestUpload(t *testing.T) {
	bucket := os.Getenv("TEST_GCS_BUCKET")
	if bucket == "" {
		t.Skip("TEST_GCS_BUCKET is not set")
	}

	ctx := context.Background()
	client, err := gcs.New(ctx)
	gt.NoError(t, err).Required()
	defer func() { gt.NoError(t, client.Close()) }()

	obj := gcs.Object{
		Bucket: bucket,
		Name:   "cmseval-test/" + time.Now().Format("20060102150405") + ".json",
	}
	gt.NoError(t, client.Upload(ctx, obj, "application/json", []byte(`{"vendors":[]}`)))
}
