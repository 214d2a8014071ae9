package main

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"wot/internal/domain/reference"
	"wot/internal/geo"
	"wot/internal/params"
	"wot/internal/service"
)

// stateParam defaults a missing ?state to active.
func stateParam(q url.Values) *string {
	if state := params.OptionalString(q, "state"); state != nil {
		return state
	}
	active := reference.StateActive
	return &active
}

func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

// listToiletsHandler godoc
//
//	@Summary		List toilets
//	@Description	Lists toilets by state and access. Toilets the requester hid are skipped unless ids are given.
//	@Tags			toilets
//	@Produce		json
//	@Param			ids			query		string	false	"Comma separated toilet ids"
//	@Param			state		query		string	false	"Toilet state"	default(active)
//	@Param			access		query		string	false	"Access type"
//	@Param			userId		query		int		false	"Requester id"
//	@Param			pageable	query		bool	false	"Paginate the result"
//	@Param			page		query		int		false	"Zero based page index"
//	@Param			size		query		int		false	"Page size"	default(20)
//	@Success		200			{array}		enrich.ToiletView
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		500			{object}	error
//	@Router			/toilets [get]
func (app *application) listToiletsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	ids, err := params.Int64List(q, "ids")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	page, err := params.ParsePage(q)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	views, err := app.toilets.ListToilets(r.Context(), service.ListToiletsInput{
		IDs:       ids,
		State:     stateParam(q),
		Access:    params.OptionalString(q, "access"),
		Requester: getRequester(r),
		Page:      page,
	})
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, views); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listToiletsNearbyHandler godoc
//
//	@Summary		List toilets near a point
//	@Description	Nearest first, with the great-circle distance in km.
//	@Tags			toilets
//	@Produce		json
//	@Param			lat			query		number	true	"Latitude"
//	@Param			lon			query		number	true	"Longitude"
//	@Param			state		query		string	false	"Toilet state"	default(active)
//	@Param			access		query		string	false	"Access type"
//	@Param			userId		query		int		false	"Requester id"
//	@Param			pageable	query		bool	false	"Paginate the result"
//	@Param			page		query		int		false	"Zero based page index"
//	@Param			size		query		int		false	"Page size"	default(20)
//	@Success		200			{array}		enrich.ToiletView
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Router			/toilets/nearby [get]
func (app *application) listToiletsNearbyHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := params.Float(q, "lat")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	lon, err := params.Float(q, "lon")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	page, err := params.ParsePage(q)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	views, err := app.toilets.ListToiletsNearby(r.Context(), service.NearbyInput{
		Origin:    geo.Point{Lat: lat, Lon: lon},
		State:     stateParam(q),
		Access:    params.OptionalString(q, "access"),
		Requester: getRequester(r),
		Page:      page,
	})
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, views); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listToiletsInBoundingBoxHandler godoc
//
//	@Summary		List toilets inside a bounding box
//	@Tags			toilets
//	@Produce		json
//	@Param			minLat	query		number	true	"South edge"
//	@Param			maxLat	query		number	true	"North edge"
//	@Param			minLon	query		number	true	"West edge"
//	@Param			maxLon	query		number	true	"East edge"
//	@Param			userId	query		int		false	"Requester id"
//	@Success		200		{array}		enrich.ToiletView
//	@Failure		400		{object}	error
//	@Router			/toilets/bounding [get]
func (app *application) listToiletsInBoundingBoxHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var box geo.BoundingBox
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"minLat", &box.MinLat},
		{"maxLat", &box.MaxLat},
		{"minLon", &box.MinLon},
		{"maxLon", &box.MaxLon},
	} {
		v, err := params.Float(q, f.key)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		*f.dst = v
	}

	views, err := app.toilets.ListToiletsInBoundingBox(r.Context(), box, getRequester(r))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, views); err != nil {
		app.internalServerError(w, r, err)
	}
}

// searchToiletsHandler godoc
//
//	@Summary		Search active toilets by name and address
//	@Tags			toilets
//	@Produce		json
//	@Param			query		path		string	true	"Search text"
//	@Param			pageable	query		bool	false	"Paginate the result"
//	@Param			page		query		int		false	"Zero based page index"
//	@Param			size		query		int		false	"Page size"	default(20)
//	@Success		200			{array}		enrich.ToiletView
//	@Failure		400			{object}	error
//	@Router			/toilets/search/{query} [get]
func (app *application) searchToiletsHandler(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(query)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		query = unescaped
	}
	page, err := params.ParsePage(r.URL.Query())
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	views, err := app.toilets.SearchToilets(r.Context(), query, page)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, views); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listToiletsByUserHandler godoc
//
//	@Summary		List toilets a user interacted with
//	@Description	Without state every toilet the user interacted with is returned.
//	@Tags			toilets
//	@Produce		json
//	@Param			userID		path		int		true	"User id"
//	@Param			state		query		string	false	"Toilet state"
//	@Param			pageable	query		bool	false	"Paginate the result"
//	@Param			page		query		int		false	"Zero based page index"
//	@Param			size		query		int		false	"Page size"	default(20)
//	@Success		200			{array}		enrich.ToiletView
//	@Failure		404			{object}	error
//	@Router			/toilets/users/{userID} [get]
func (app *application) listToiletsByUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	q := r.URL.Query()
	page, err := params.ParsePage(q)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	views, err := app.toilets.ListToiletsByUser(r.Context(), userID, params.OptionalString(q, "state"), page)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, views); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getToiletHandler godoc
//
//	@Summary		Get a toilet
//	@Tags			toilets
//	@Produce		json
//	@Param			toiletID	path		int	true	"Toilet id"
//	@Success		200			{object}	enrich.ToiletView
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Router			/toilets/{toiletID} [get]
func (app *application) getToiletHandler(w http.ResponseWriter, r *http.Request) {
	toiletID, err := idParam(r, "toiletID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	view, err := app.toilets.GetToilet(r.Context(), toiletID)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// reportToiletHandler godoc
//
//	@Summary		Report a toilet
//	@Description	userId may be left out when the requester is known. A bearer token user must match userId.
//	@Tags			toilets
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		service.ReportToiletInput	true	"Report"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	error
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/toilets/reports [post]
func (app *application) reportToiletHandler(w http.ResponseWriter, r *http.Request) {
	var payload service.ReportToiletInput
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if !app.bindRequester(w, r, &payload.UserID) {
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.toilets.ReportToilet(r.Context(), payload); err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, map[string]string{"message": "toilet reported"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
