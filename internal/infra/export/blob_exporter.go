// Package export writes shopping list exports to a gocloud blob bucket.
package export

import (
	"context"
	"encoding/json"
	"log/slog"
	"path"
	"time"

	"dietplan/config"
	"dietplan/internal/domain/entity"
	"dietplan/internal/domain/service"
	"dietplan/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
)

const (
	listObject = "shopping-list.json"
	qrObject   = "shopping-list.png"
)

type listDocument struct {
	WeeklyDietID string                    `json:"weekly_diet_id"`
	UserID       string                    `json:"user_id"`
	WeekStart    string                    `json:"week_start"`
	GeneratedAt  time.Time                 `json:"generated_at"`
	ExportedAt   time.Time                 `json:"exported_at"`
	Items        []entity.ShoppingListItem `json:"items"`
}

type blobExporter struct {
	bucket *blob.Bucket
	prefix string
	logger *slog.Logger
	now    func() time.Time
}

// Params holds the dependencies of the Fx-provided exporter.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured export bucket and closes it when the app stops.
func New(params Params) (service.ShoppingListExporter, error) {
	if params.Config.Export == nil || params.Config.Export.BucketURL == "" {
		return nil, errors.New("export bucket url is not configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Export.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open export bucket %s", params.Config.Export.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobExporter(bucket, params.Config.Export.Prefix, params.Logger), nil
}

// NewBlobExporter creates an exporter writing into an already opened bucket.
func NewBlobExporter(bucket *blob.Bucket, prefix string, logger *slog.Logger) service.ShoppingListExporter {
	return &blobExporter{
		bucket: bucket,
		prefix: prefix,
		logger: logger,
		now:    time.Now,
	}
}

// Export writes <prefix>/<user>/<week start>/shopping-list.json and the matching PNG.
func (e *blobExporter) Export(ctx context.Context, export *service.ShoppingListExport) (*service.ShoppingListExportResult, error) {
	if export == nil {
		return nil, errors.New("export is nil")
	}

	dir := path.Join(e.prefix, export.UserID.String(), export.WeekStart.Format(util.DateLayout))
	result := &service.ShoppingListExportResult{
		ListKey: path.Join(dir, listObject),
		QRKey:   path.Join(dir, qrObject),
	}

	items := export.Items
	if items == nil {
		items = []entity.ShoppingListItem{}
	}
	body, err := json.MarshalIndent(listDocument{
		WeeklyDietID: export.WeeklyDietID.String(),
		UserID:       export.UserID.String(),
		WeekStart:    export.WeekStart.Format(util.DateLayout),
		GeneratedAt:  export.GeneratedAt,
		ExportedAt:   e.now().UTC(),
		Items:        items,
	}, "", "  ")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := e.bucket.WriteAll(ctx, result.ListKey, body, &blob.WriterOptions{
		ContentType: "application/json",
	}); err != nil {
		return nil, errors.Wrapf(err, "write %s", result.ListKey)
	}

	if len(export.QRCode) > 0 {
		if err := e.bucket.WriteAll(ctx, result.QRKey, export.QRCode, &blob.WriterOptions{
			ContentType: "image/png",
		}); err != nil {
			return nil, errors.Wrapf(err, "write %s", result.QRKey)
		}
	} else {
		// A stale code from an earlier export must not outlive its list
		if err := e.bucket.Delete(ctx, result.QRKey); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return nil, errors.Wrapf(err, "delete %s", result.QRKey)
		}
		result.QRKey = ""
	}

	e.logger.Debug("Shopping list exported",
		slog.String("list_key", result.ListKey),
		slog.String("qr_key", result.QRKey),
		slog.Int("items", len(items)),
	)

	return result, nil
}
