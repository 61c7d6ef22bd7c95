package service

import (
	"context"

	"github.com/MKhiriev/go-tab-keeper/internal/adapter"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/share"
	"github.com/MKhiriev/go-tab-keeper/internal/store"
	"github.com/MKhiriev/go-tab-keeper/models"
)

type shareService struct {
	folders   store.FolderStore
	links     *share.Links
	shortener adapter.Shortener
}

// NewShareService returns a ShareService. shortener may be nil, in which
// case links are never shortened.
func NewShareService(folders store.FolderStore, links *share.Links, shortener adapter.Shortener) ShareService {
	return &shareService{folders: folders, links: links, shortener: shortener}
}

func (s *shareService) Share(ctx context.Context, folderID, password string, shorten bool) (ShareResult, error) {
	if password == "" {
		return ShareResult{}, ErrEmptyPassword
	}

	stored, err := s.folders.GetByID(ctx, folderID)
	folder, err := found(stored, err, folderID)
	if err != nil {
		return ShareResult{}, err
	}

	longURL, err := s.links.BuildShareURL(ctx, folder, password)
	if err != nil {
		return ShareResult{}, err
	}

	result := ShareResult{URL: longURL, LongURL: longURL}
	if shorten {
		result.URL, result.Shortened = share.ShortenOrFallback(ctx, s.shortener, longURL)
	}

	logger.FromContext(ctx).Info().
		Str("func", "shareService.Share").
		Str("folder_id", folderID).
		Bool("shortened", result.Shortened).
		Msg("share link created")
	return result, nil
}

func (s *shareService) Open(ctx context.Context, link, password string) (models.Folder, error) {
	if password == "" {
		return models.Folder{}, ErrEmptyPassword
	}
	return s.links.OpenShareURL(ctx, link, password)
}

func (s *shareService) Import(ctx context.Context, link, password string) (models.Folder, error) {
	shared, err := s.Open(ctx, link, password)
	if err != nil {
		return models.Folder{}, err
	}

	name := shared.Name
	if name == "" {
		name = "Shared folder"
	}
	return s.folders.Create(ctx, name, shared.HostTabs())
}
