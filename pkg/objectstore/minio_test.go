package objectstore_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"qcscargo/pkg/objectstore"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	testminio "github.com/testcontainers/testcontainers-go/modules/minio"
)

const (
	minioUsername = "miniousername"
	minioPassword = "miniopassword"
	bucket        = "qcs-documents"
)

func newTestStore(t *testing.T) *objectstore.MinioStore {
	t.Helper()
	ctx := context.Background()

	container, err := testminio.Run(ctx, "minio/minio:RELEASE.2024-01-16T16-07-38Z",
		testminio.WithUsername(minioUsername),
		testminio.WithPassword(minioPassword),
	)
	t.Cleanup(func() {
		require.NoError(t, testcontainers.TerminateContainer(container))
	})
	require.NoError(t, err)

	endpoint, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(minioUsername, minioPassword, ""),
		Secure: false,
	})
	require.NoError(t, err)

	s := objectstore.NewMinioWithClient(client, bucket, "us-east-1")
	require.NoError(t, s.EnsureBucket(ctx))
	// a second call finds the bucket
	require.NoError(t, s.EnsureBucket(ctx))

	return s
}

func TestMinioStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	s := newTestStore(t)

	body := []byte("%PDF-1.4 invoice")
	key := "customers/abc/123/invoice.pdf"
	require.NoError(t, s.Put(ctx, objectstore.Object{
		Key:         key,
		ContentType: "application/pdf",
		Size:        int64(len(body)),
		Body:        bytes.NewReader(body),
	}))

	link, err := s.PresignGet(ctx, key, "invoice.pdf", time.Minute)
	require.NoError(t, err)
	require.Contains(t, link, "X-Amz-Signature")

	resp, err := http.Get(link) //nolint: gosec, noctx
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.HasPrefix(resp.Header.Get("Content-Disposition"), "attachment"))
	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, body, got)

	require.NoError(t, s.Delete(ctx, key))
	require.NoError(t, s.Delete(ctx, key))
}
