package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

type EventsHandler struct {
	Bus *store.Bus
}

// ServeHTTP godoc
//
//	@Summary		Store Events Endpoint
//	@Description	Stream store mutation events as server-sent events. Every create, update and delete on any collection produces one event; the stream ends when the client disconnects.
//	@Tags			Events
//	@Produce		text/event-stream
//	@Success		200	{object}	store.Event				"kind, collection, id, at"
//	@Failure		500	{object}	boardsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/events [get].
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	flusher, ok := w.(http.Flusher)
	if !ok {
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeServerError,
			ErrorDescription: "Streaming not supported",
		})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Connection", "keep-alive")
	httpx.NoCache(w)
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Buffered so a slow client can't stall the publisher; events beyond
	// the buffer are dropped for this subscriber.
	events := make(chan store.Event, 64)
	cancel := h.Bus.Subscribe(func(e store.Event) {
		select {
		case events <- e:
		default:
		}
	})
	defer cancel()

	log := slogx.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-events:
			payload, err := json.Marshal(e)
			if err != nil {
				log.Error("event encode failed", "err", err)
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
