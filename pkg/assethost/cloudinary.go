// Package assethost wraps the Cloudinary SDK used to host model images.
// Uploads return the hosted URL plus the public ID needed to destroy the
// asset later; destroys are treated as best-effort by callers.
package assethost

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/ghuser/aquacatalog/pkg/config"
)

// Asset identifies a hosted image: its public URL and the host-side handle
// used for later deletion.
type Asset struct {
	URL     string
	AssetID string
}

// Client is the Cloudinary-backed asset host. Safe for concurrent use.
type Client struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// New returns a Client configured from cfg.
func New(cfg *config.Config) (*Client, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &Client{cld: cld, folder: cfg.CloudinaryFolder}, nil
}

// Upload sends the image to Cloudinary and returns the hosted asset.
// Any transport or API failure surfaces with the underlying message.
func (c *Client) Upload(ctx context.Context, file io.Reader, filename string) (*Asset, error) {
	resp, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:           c.folder,
		FilenameOverride: filename,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return &Asset{URL: resp.SecureURL, AssetID: resp.PublicID}, nil
}

// Destroy deletes a hosted asset by its public ID.
func (c *Client) Destroy(ctx context.Context, assetID string) error {
	resp, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: assetID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: %s", resp.Result)
	}
	return nil
}

// Ping verifies the Cloudinary API is reachable. Satisfies httpx.HealthChecker.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.cld.Admin.Ping(ctx)
	if err != nil {
		return fmt.Errorf("cloudinary ping: %w", err)
	}
	if resp.Status != "ok" {
		return errors.New("cloudinary ping: status " + resp.Status)
	}
	return nil
}
