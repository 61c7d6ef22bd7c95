package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tab-keeper/models"
)

const (
	FieldText     = "text"
	FieldFolderID = "folder_id"
	FieldTabs     = "tabs"
	FieldTabIDs   = "tab_ids"
)

// MaxSelectedTabs bounds a single tabsSelected message.
const MaxSelectedTabs = 10000

// MessageValidator validates the daemon messages declared in models.
type MessageValidator struct{}

func NewMessageValidator() Validator {
	return &MessageValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// of every message are accepted; CopyAllTabs has no payload and always
// passes.
func (v *MessageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TabsSelected:
		return v.validateTabsSelected(ctx, value, fields...)
	case *models.TabsSelected:
		return v.validateTabsSelected(ctx, *value, fields...)

	case models.CopyToClipboard:
		return v.validateCopyToClipboard(ctx, value, fields...)
	case *models.CopyToClipboard:
		return v.validateCopyToClipboard(ctx, *value, fields...)

	case models.OpenFolder:
		return v.validateOpenFolder(ctx, value, fields...)
	case *models.OpenFolder:
		return v.validateOpenFolder(ctx, *value, fields...)

	case models.CopyAllTabs, *models.CopyAllTabs:
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *MessageValidator) validateTabsSelected(_ context.Context, msg models.TabsSelected, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTabs, FieldTabIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldTabs:
			if len(msg.Tabs) > MaxSelectedTabs {
				return fmt.Errorf("%w: %d", ErrTooManyTabs, len(msg.Tabs))
			}
			for i, tab := range msg.Tabs {
				if tab.URL == "" {
					return fmt.Errorf("%w: tab %d", ErrEmptyTabURL, i)
				}
			}
		case FieldTabIDs:
			seen := make(map[int]struct{}, len(msg.Tabs))
			for _, tab := range msg.Tabs {
				if tab.ID < 0 {
					return fmt.Errorf("%w: %d", ErrInvalidTabID, tab.ID)
				}
				if _, ok := seen[tab.ID]; ok {
					return fmt.Errorf("%w: %d", ErrDuplicateTab, tab.ID)
				}
				seen[tab.ID] = struct{}{}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

func (v *MessageValidator) validateCopyToClipboard(_ context.Context, msg models.CopyToClipboard, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if msg.Text == "" {
				return ErrEmptyText
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

func (v *MessageValidator) validateOpenFolder(_ context.Context, msg models.OpenFolder, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFolderID}
	}

	for _, f := range fields {
		switch f {
		case FieldFolderID:
			if msg.FolderID == "" {
				return ErrEmptyFolderID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}
