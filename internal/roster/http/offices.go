package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
	"github.com/aussiebroadwan/roster/internal/roster/service"
	"github.com/aussiebroadwan/roster/pkg/httpx"
	"github.com/aussiebroadwan/roster/pkg/rostersdk"
)

// OfficesHandler serves office CRUD.
type OfficesHandler struct {
	OfficeService *service.OfficeService
}

func toOfficeResponse(o domain.Office) rostersdk.Office {
	return rostersdk.Office{ID: o.ID, Name: o.Name, Location: o.Location}
}

func decodeOffice(w http.ResponseWriter, r *http.Request) (domain.Office, error) {
	var req rostersdk.OfficeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		return domain.Office{}, invalidBody(err)
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Location = strings.TrimSpace(req.Location)

	if err := validateStruct(req); err != nil {
		return domain.Office{}, err
	}
	return domain.Office{Name: req.Name, Location: req.Location}, nil
}

// HandleCreate handles POST /api/v1/offices
//
//	@Summary		Create office
//	@Tags			Offices
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		rostersdk.OfficeRequest	true	"office"
//	@Success		201		{object}	rostersdk.Office
//	@Failure		400		{object}	rostersdk.ErrorResponse	"validation_error"
//	@Router			/api/v1/offices [post].
func (h *OfficesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	o, err := decodeOffice(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.OfficeService.Create(r.Context(), o)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toOfficeResponse(created))
}

// HandleList handles GET /api/v1/offices
//
//	@Summary		List offices
//	@Tags			Offices
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	rostersdk.Office
//	@Router			/api/v1/offices [get].
func (h *OfficesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.OfficeService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := make([]rostersdk.Office, 0, len(list))
	for _, o := range list {
		resp = append(resp, toOfficeResponse(o))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /api/v1/offices/{id}
//
//	@Summary		Get office
//	@Tags			Offices
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"office id"
//	@Success		200	{object}	rostersdk.Office
//	@Failure		404	{object}	rostersdk.ErrorResponse	"not_found"
//	@Router			/api/v1/offices/{id} [get].
func (h *OfficesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	o, err := h.OfficeService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toOfficeResponse(o))
}

// HandleUpdate handles PUT /api/v1/offices/{id}
//
//	@Summary		Update office
//	@Tags			Offices
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int						true	"office id"
//	@Param			request	body		rostersdk.OfficeRequest	true	"office"
//	@Success		200		{object}	rostersdk.Office
//	@Failure		400		{object}	rostersdk.ErrorResponse	"validation_error"
//	@Failure		404		{object}	rostersdk.ErrorResponse	"not_found"
//	@Router			/api/v1/offices/{id} [put].
func (h *OfficesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	o, err := decodeOffice(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.OfficeService.Update(r.Context(), id, o)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toOfficeResponse(updated))
}

// HandleDelete handles DELETE /api/v1/offices/{id}
//
//	@Summary		Delete office
//	@Description	Links from employees to the office are left in place and skipped on reads.
//	@Tags			Offices
//	@Security		BearerAuth
//	@Param			id	path	int	true	"office id"
//	@Success		204
//	@Router			/api/v1/offices/{id} [delete].
func (h *OfficesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.OfficeService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
