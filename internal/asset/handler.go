package asset

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/showcase3d/service/internal/response"
)

// maxUploadBytes caps the whole multipart request body at 100 MB.
const maxUploadBytes = 100 << 20

// multipartMemory is how much of a parsed form is held in memory before
// spilling to temp files.
const multipartMemory = 32 << 20

// Handler holds HTTP handlers for model endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new model Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type uploadResponse struct {
	Success  bool   `json:"success"`
	Model    *Model `json:"model"`
	ViewLink string `json:"viewLink"`
}

type likeRequest struct {
	Change int64 `json:"change"`
}

type likeResponse struct {
	Likes int64 `json:"likes"`
}

type patchRequest struct {
	Qty  *int64  `json:"qty"`
	Sold *int64  `json:"sold"`
	Name *string `json:"name"`
	Info *Info   `json:"info"`
}

type deleteResponse struct {
	Success bool `json:"success"`
}

// Upload godoc
//
//	@Summary		Upload a 3D model
//	@Description	Accepts a multipart upload with a required modelFile, an optional bgFile, and optional name/qty/sold/info fields. Returns the created record and its public share link.
//	@Tags			models
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			modelFile	formData	file	true	"3D model file (.glb/.gltf)"
//	@Param			bgFile		formData	file	false	"Background image"
//	@Param			name		formData	string	false	"Display name (defaults to the uploaded filename)"
//	@Param			qty			formData	int		false	"Total supply (default 100)"
//	@Param			sold		formData	int		false	"Units sold (default 0)"
//	@Success		201	{object}	uploadResponse
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		401	{object}	response.ErrorBody
//	@Router			/api/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		response.BadRequest(w, "upload error")
		return
	}

	modelFile, modelHeader, err := r.FormFile("modelFile")
	if err != nil {
		response.BadRequest(w, "model file is required")
		return
	}
	defer modelFile.Close()

	in := IngestInput{
		ModelFile: &FileUpload{
			Reader:      modelFile,
			Filename:    modelHeader.Filename,
			Size:        modelHeader.Size,
			ContentType: modelHeader.Header.Get("Content-Type"),
		},
		Name: r.FormValue("name"),
		Info: Info{
			TopLeft:     r.FormValue("infoTopLeft"),
			TopRight:    r.FormValue("infoTopRight"),
			BottomLeft:  r.FormValue("infoBottomLeft"),
			BottomRight: r.FormValue("infoBottomRight"),
		},
	}

	if bgFile, bgHeader, err := r.FormFile("bgFile"); err == nil {
		defer bgFile.Close()
		in.BgFile = &FileUpload{
			Reader:      bgFile,
			Filename:    bgHeader.Filename,
			Size:        bgHeader.Size,
			ContentType: bgHeader.Header.Get("Content-Type"),
		}
	}

	in.Qty = formInt(r, "qty")
	in.Sold = formInt(r, "sold")

	m, viewLink, err := h.svc.Ingest(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrModelFileRequired):
			response.BadRequest(w, "model file is required")
		case errors.Is(err, ErrNegativeValue):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrUpload):
			response.Error(w, http.StatusBadGateway, "upload failed")
		case errors.Is(err, ErrConflict):
			response.Conflict(w, "could not allocate a unique short id")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, uploadResponse{Success: true, Model: m, ViewLink: viewLink})
}

// List godoc
//
//	@Summary	List all models
//	@Tags		models
//	@Produce	json
//	@Success	200	{array}	Model
//	@Router		/api/models [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	models, err := h.svc.List(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, models)
}

// Get godoc
//
//	@Summary		Fetch a model by short ID
//	@Description	Returns the record and counts the view; the returned views field reflects this fetch.
//	@Tags			models
//	@Produce		json
//	@Param			shortId	path		string	true	"Short ID"
//	@Success		200		{object}	Model
//	@Failure		404		{object}	response.ErrorBody
//	@Router			/api/models/{shortId} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.View(r.Context(), chi.URLParam(r, "shortId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "model not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.OK(w, m)
}

// Like godoc
//
//	@Summary		Like or unlike a model
//	@Description	Adjusts the like counter by change (1 or -1, default 1). The counter never drops below zero.
//	@Tags			models
//	@Accept			json
//	@Produce		json
//	@Param			shortId	path		string		true	"Short ID"
//	@Param			request	body		likeRequest	false	"Signed adjustment"
//	@Success		200		{object}	likeResponse
//	@Failure		404		{object}	response.ErrorBody
//	@Router			/api/models/{shortId}/like [post]
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	// Malformed or absent bodies count as a like, matching the lenient
	// behavior viewers depend on.
	req := likeRequest{Change: 1}
	_ = json.NewDecoder(r.Body).Decode(&req)

	likes, err := h.svc.Like(r.Context(), chi.URLParam(r, "shortId"), req.Change)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "model not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.OK(w, likeResponse{Likes: likes})
}

// Update godoc
//
//	@Summary		Edit model metadata
//	@Description	Partial update: only fields present in the body are changed.
//	@Tags			models
//	@Accept			json
//	@Produce		json
//	@Param			shortId	path		string			true	"Short ID"
//	@Param			request	body		patchRequest	true	"Fields to change"
//	@Success		200		{object}	Model
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		401		{object}	response.ErrorBody
//	@Failure		404		{object}	response.ErrorBody
//	@Router			/api/models/{shortId} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req patchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	m, err := h.svc.Update(r.Context(), chi.URLParam(r, "shortId"), UpdateParams{
		Name: req.Name,
		Qty:  req.Qty,
		Sold: req.Sold,
		Info: req.Info,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNegativeValue):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "model not found")
		default:
			response.InternalError(w)
		}
		return
	}
	response.OK(w, m)
}

// Delete godoc
//
//	@Summary		Delete a model
//	@Description	Removes the record; deletion of the stored file bytes is best effort.
//	@Tags			models
//	@Produce		json
//	@Param			shortId	path		string	true	"Short ID"
//	@Success		200		{object}	deleteResponse
//	@Failure		401		{object}	response.ErrorBody
//	@Failure		404		{object}	response.ErrorBody
//	@Router			/api/models/{shortId} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Delete(r.Context(), chi.URLParam(r, "shortId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, "model not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.OK(w, deleteResponse{Success: true})
}

// formInt parses an optional integer form field. Absent or unparseable values
// are treated as absent so defaults apply.
func formInt(r *http.Request, field string) *int64 {
	raw := r.FormValue(field)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
