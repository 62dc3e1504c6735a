package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"brick-manager/core/storage"
	"brick-manager/feature/catalog"
	"brick-manager/feature/resolve"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Supported export formats.
const (
	FormatRebrickable = "rebrickable"
	FormatBricklink   = "bricklink"
	FormatElement     = "element"
)

// ErrUnknownFormat rejects requests for a format no generator serves.
var ErrUnknownFormat = errors.New("unknown export format")

// Result is the outcome of one export request.
type Result struct {
	CSV        string       `json:"csv"`
	Unmapped   []MissingRow `json:"unmapped"`
	MinifigIDs []string     `json:"minifig_ids,omitempty"`
	ArchiveKey string       `json:"archive_key,omitempty"`
}

// Service dispatches export requests to the generators and optionally
// archives the rendered manifest to object storage.
type Service struct {
	provider *catalog.ContextProvider
	client   storage.Client
	bucket   string
	archive  bool
	logger   *zap.Logger
}

// NewService creates an export service. provider may be nil when no
// catalog database is available; client may be nil when archiving is off.
func NewService(provider *catalog.ContextProvider, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		provider: provider,
		client:   client,
		bucket:   cfg.Bucket,
		archive:  cfg.Enabled && client != nil,
		logger:   logger,
	}
}

// Generate renders the manifest for one format.
func (s *Service) Generate(ctx context.Context, format, setNumber string, rows []MissingRow, opts Options) (*Result, error) {
	var result *Result

	switch format {
	case FormatRebrickable:
		out := GenerateRebrickable(rows, opts)
		result = &Result{CSV: out.CSV, Unmapped: out.Unmapped}
	case FormatBricklink:
		out := GenerateBricklink(ctx, rows, opts, s.fallbackResolver())
		result = &Result{CSV: out.CSV, Unmapped: out.Unmapped, MinifigIDs: out.MinifigIDs}
	case FormatElement:
		out := GenerateElement(rows, opts)
		result = &Result{CSV: out.CSV, Unmapped: out.Unmapped}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	if opts.Archive && s.archive {
		result.ArchiveKey = s.archiveManifest(ctx, setNumber, format, result.CSV)
	}

	return result, nil
}

// ResolveRow implements IdentityResolver using the cached mapping tables.
func (s *Service) ResolveRow(ctx context.Context, partID string, colorID int) (*resolve.PartIdentity, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("no mapping context available")
	}
	rctx, err := s.provider.Get(ctx)
	if err != nil {
		return nil, err
	}
	identity := resolve.Resolve(resolve.NewRow(partID, colorID), rctx)
	return &identity, nil
}

// fallbackResolver exposes the slow per-row path only when mapping tables
// are reachable.
func (s *Service) fallbackResolver() IdentityResolver {
	if s.provider == nil {
		return nil
	}
	return s
}

// archiveManifest uploads the manifest for audit history. Failure is
// logged and never fails the export; the empty key tells the caller
// nothing was archived.
func (s *Service) archiveManifest(ctx context.Context, setNumber, format, content string) string {
	set := setNumber
	if set == "" {
		set = "adhoc"
	}
	key := fmt.Sprintf("exports/%s/%s-%s.csv", set, format, time.Now().UTC().Format("20060102T150405Z"))

	_, err := s.client.PutObject(ctx, s.bucket, key, strings.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		s.logger.Warn("Manifest archive upload failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return ""
	}
	return key
}
