package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-tab-keeper/internal/app"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/utils"
	"github.com/MKhiriev/go-tab-keeper/models"
)

const maxMessageSize = 4 << 20

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxMessageSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = ErrMessageTooLarge
		}
		h.writeReplyError(w, r, err, statusFromError(err))
		return
	}

	msg, err := models.DecodeMessage(body)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.handleMessage").Msg("undecodable message")
		h.writeReplyError(w, r, err, http.StatusBadRequest)
		return
	}

	if err = h.validator.Validate(r.Context(), msg); err != nil {
		log.Warn().Err(err).
			Str("func", "*Handler.handleMessage").
			Str("action", string(msg.Action())).
			Msg("invalid message")
		h.writeReplyError(w, r, err, statusFromError(err))
		return
	}

	reply, err := h.dispatch(r.Context(), msg)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.handleMessage").
			Str("action", string(msg.Action())).
			Msg("message action failed")
		h.writeReplyError(w, r, err, statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, reply, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.handleMessage").Msg("error writing response")
	}
}

// dispatch runs the action behind msg. The switch covers every Message
// implementation.
func (h *Handler) dispatch(ctx context.Context, msg models.Message) (models.MessageReply, error) {
	switch m := msg.(type) {
	case models.TabsSelected:
		h.session.SetSelected(m.Tabs)
		return models.MessageReply{OK: true, Count: len(m.Tabs)}, nil

	case models.CopyToClipboard:
		res, err := h.services.Copy.CopyText(ctx, m.Text)
		if err != nil {
			return models.MessageReply{}, err
		}
		return models.MessageReply{OK: true, Strategy: res.Strategy}, nil

	case models.OpenFolder:
		opened, err := h.services.Folders.OpenFolder(ctx, m.FolderID)
		if err != nil {
			return models.MessageReply{}, err
		}
		return models.MessageReply{OK: true, Count: opened}, nil

	case models.CopyAllTabs:
		res, err := h.services.Copy.CopyAll(ctx)
		if err != nil {
			return models.MessageReply{}, err
		}
		return models.MessageReply{OK: true, Strategy: res.Strategy, Count: res.Count}, nil

	default:
		return models.MessageReply{}, fmt.Errorf("%w: %T", models.ErrUnknownAction, msg)
	}
}

func (h *Handler) writeReplyError(w http.ResponseWriter, r *http.Request, err error, status int) {
	reply := models.MessageReply{OK: false, Error: err.Error()}
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway && status != http.StatusServiceUnavailable {
		reply.Error = app.MsgInternalError
	}
	if _, werr := utils.WriteJSON(w, reply, status); werr != nil {
		logger.FromRequest(r).Err(werr).Str("func", "*Handler.writeReplyError").Msg("error writing response")
	}
}
