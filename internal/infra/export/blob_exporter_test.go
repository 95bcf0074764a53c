package export

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"dietplan/internal/domain/entity"
	"dietplan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestExport() *service.ShoppingListExport {
	return &service.ShoppingListExport{
		WeeklyDietID: uuid.MustParse("5f1d2a9e-0c1b-4f3e-8a77-2b1f0e6c9d10"),
		UserID:       uuid.MustParse("0a6c6e1d-7c7b-4d38-9a58-0d2f3c4b5a61"),
		WeekStart:    time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		Items: []entity.ShoppingListItem{
			{Name: "egg", Unit: "piece", Quantity: 6, Dishes: []string{"Steamed Egg"}},
		},
		QRCode:      []byte("\x89PNG"),
		GeneratedAt: time.Date(2026, 10, 11, 20, 0, 0, 0, time.UTC),
	}
}

func TestBlobExporter_Export(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	exporter := NewBlobExporter(bucket, "lists", newDiscardLogger()).(*blobExporter)
	exporter.now = func() time.Time { return time.Date(2026, 10, 12, 6, 0, 0, 0, time.UTC) }

	result, err := exporter.Export(ctx, createTestExport())
	require.NoError(t, err)

	wantDir := "lists/0a6c6e1d-7c7b-4d38-9a58-0d2f3c4b5a61/2026-10-12/"
	assert.Equal(t, wantDir+"shopping-list.json", result.ListKey)
	assert.Equal(t, wantDir+"shopping-list.png", result.QRKey)

	raw, err := bucket.ReadAll(ctx, result.ListKey)
	require.NoError(t, err)
	var doc listDocument
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "5f1d2a9e-0c1b-4f3e-8a77-2b1f0e6c9d10", doc.WeeklyDietID)
	assert.Equal(t, "2026-10-12", doc.WeekStart)
	assert.Equal(t, time.Date(2026, 10, 12, 6, 0, 0, 0, time.UTC), doc.ExportedAt)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "egg", doc.Items[0].Name)

	attrs, err := bucket.Attributes(ctx, result.QRKey)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	png, err := bucket.ReadAll(ctx, result.QRKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png)
}

func TestBlobExporter_ExportOverwrites(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	exporter := NewBlobExporter(bucket, "", newDiscardLogger())

	first := createTestExport()
	_, err := exporter.Export(ctx, first)
	require.NoError(t, err)

	second := createTestExport()
	second.Items = nil
	second.QRCode = nil
	result, err := exporter.Export(ctx, second)
	require.NoError(t, err)
	assert.Empty(t, result.QRKey)
	exists, err := bucket.Exists(ctx, "0a6c6e1d-7c7b-4d38-9a58-0d2f3c4b5a61/2026-10-12/shopping-list.png")
	require.NoError(t, err)
	assert.False(t, exists)

	raw, err := bucket.ReadAll(ctx, result.ListKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"items": []`)
}

func TestBlobExporter_ExportNil(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	_, err := NewBlobExporter(bucket, "", newDiscardLogger()).Export(context.Background(), nil)

	assert.Error(t, err)
}

func TestBlobExporter_ClosedBucket(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	require.NoError(t, bucket.Close())

	_, err := NewBlobExporter(bucket, "", newDiscardLogger()).Export(context.Background(), createTestExport())

	assert.Error(t, err)
}

