package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/errors"
	"github.com/matzehuels/whiteboard/pkg/icon"
	pkgio "github.com/matzehuels/whiteboard/pkg/io"
	"github.com/matzehuels/whiteboard/pkg/render"
	"github.com/matzehuels/whiteboard/pkg/store"
)

// maxBodyBytes caps request bodies; boards with embedded images are large.
const maxBodyBytes = 32 << 20

type boardResponse struct {
	Board any `json:"board"`
}

func (s *Server) listBoards(w http.ResponseWriter, r *http.Request) {
	metas, err := s.store.List(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]store.Meta{"boards": metas})
}

func (s *Server) createBoard(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	// A missing or malformed body creates an unnamed board.
	_ = json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body)

	rec, err := s.store.Create(r.Context(), body.Name)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, boardResponse{Board: rec.Meta})
}

func (s *Server) getBoard(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boardResponse{Board: rec})
}

func (s *Server) saveBoard(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Payload json.RawMessage `json:"payload"`
		Name    *string         `json:"name"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if len(body.Payload) == 0 || string(body.Payload) == "null" {
		writeMessage(w, http.StatusBadRequest, "Missing payload.elements")
		return
	}
	meta, err := s.store.Save(r.Context(), chi.URLParam(r, "id"), body.Payload, body.Name)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boardResponse{Board: meta})
}

func (s *Server) renameBoard(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name *string `json:"name"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Name == nil {
		writeMessage(w, http.StatusBadRequest, "Missing name")
		return
	}
	meta, err := s.store.Rename(r.Context(), chi.URLParam(r, "id"), *body.Name)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boardResponse{Board: meta})
}

func (s *Server) deleteBoard(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) exportBoard(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	data, contentType, err := s.exporter.Export(r.Context(), rec.Payload, chi.URLParam(r, "format"))
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

func (s *Server) listIcons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]icon.Item{"icons": icon.Items()})
}

func (s *Server) iconPNG(w http.ResponseWriter, r *http.Request) {
	color := r.URL.Query().Get("color")
	if color == "" {
		color = element.DefaultIconColor
	}
	uri, err := s.icons.ResolveIcon(r.Context(), chi.URLParam(r, "id"), color)
	if err != nil {
		s.fail(w, err)
		return
	}
	_, data, err := render.DecodeDataURL(uri)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(data)
}

// decodeBody reports false after writing a 400 for an unreadable body.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// fail maps coded errors onto statuses. Unexpected errors are logged and
// reported without detail.
func (s *Server) fail(w http.ResponseWriter, err error) {
	switch errors.GetCode(err) {
	case errors.ErrCodeBoardNotFound:
		writeMessage(w, http.StatusNotFound, "Board not found")
	case errors.ErrCodeIconNotFound:
		writeMessage(w, http.StatusNotFound, "Icon not found")
	case errors.ErrCodeInvalidDocument:
		msg := errors.UserMessage(err)
		if msg == pkgio.MissingElementsMessage {
			msg = "Missing payload.elements"
		}
		writeMessage(w, http.StatusBadRequest, msg)
	case errors.ErrCodeUnknownElementType, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidInput, errors.ErrCodeInvalidID:
		writeMessage(w, http.StatusBadRequest, errors.UserMessage(err))
	default:
		s.logger.Error("request failed", "err", err)
		writeMessage(w, http.StatusInternalServerError, "Internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
