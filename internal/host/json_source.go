package host

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"

	"github.com/MKhiriev/go-tab-keeper/models"
)

// jsonSource reads a browser session export: either an array of tabs or an
// object with a "tabs" array. The file is read on every call.
type jsonSource struct {
	path string
}

// NewJSONSource returns a [TabSource] over the session file at path.
func NewJSONSource(path string) TabSource {
	return &jsonSource{path: path}
}

func (s *jsonSource) Tabs(ctx context.Context) ([]models.Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingTabs, err)
	}

	data = bytes.TrimSpace(data)
	var tabs []models.Tab
	if len(data) > 0 && data[0] == '{' {
		var session struct {
			Tabs []models.Tab `json:"tabs"`
		}
		err = json.Unmarshal(data, &session)
		tabs = session.Tabs
	} else {
		err = json.Unmarshal(data, &tabs)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrReadingTabs, s.path, err)
	}

	if tabs == nil {
		tabs = []models.Tab{}
	}
	return tabs, nil
}

func (s *jsonSource) Highlighted(ctx context.Context) ([]models.Tab, error) {
	tabs, err := s.Tabs(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(tabs, func(t models.Tab, _ int) bool { return t.Highlighted }), nil
}
