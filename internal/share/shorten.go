package share

import (
	"context"

	"github.com/MKhiriev/go-tab-keeper/internal/adapter"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
)

// ShortenOrFallback passes longURL through shortener and reports whether it
// was shortened. It never fails: any error, including a nil shortener,
// returns longURL unchanged.
func ShortenOrFallback(ctx context.Context, shortener adapter.Shortener, longURL string) (string, bool) {
	if shortener == nil {
		return longURL, false
	}

	short, err := shortener.Shorten(ctx, longURL)
	if err != nil || short == "" {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "share.ShortenOrFallback").
			Msg("shortening failed, using the long link")
		return longURL, false
	}
	return short, true
}
