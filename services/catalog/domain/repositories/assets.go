package repositories

import (
	"context"
	"io"

	"github.com/ghuser/aquacatalog/pkg/assethost"
)

// AssetHost is the narrow interface the catalog needs from the external image
// host. The domain layer owns this interface; pkg/assethost's Cloudinary
// client satisfies it, and tests substitute fakes.
type AssetHost interface {
	// Upload stores the image and returns its hosted URL and asset ID.
	Upload(ctx context.Context, file io.Reader, filename string) (*assethost.Asset, error)

	// Destroy removes a previously uploaded asset. Callers treat failures
	// as non-fatal.
	Destroy(ctx context.Context, assetID string) error
}
