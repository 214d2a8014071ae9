package main

import (
	"net/http"

	"wot/internal/params"
	"wot/internal/service"
)

// listCommentsByToiletHandler godoc
//
//	@Summary		List a toilet's comments
//	@Description	The requester's own comments come first.
//	@Tags			comments
//	@Produce		json
//	@Param			toiletID	path		int		true	"Toilet id"
//	@Param			userId		query		int		false	"Requester id"
//	@Param			pageable	query		bool	false	"Paginate the result"
//	@Param			page		query		int		false	"Zero based page index"
//	@Param			size		query		int		false	"Page size"	default(20)
//	@Success		200			{array}		enrich.CommentView
//	@Failure		404			{object}	error
//	@Router			/comments/toilets/{toiletID} [get]
func (app *application) listCommentsByToiletHandler(w http.ResponseWriter, r *http.Request) {
	toiletID, err := idParam(r, "toiletID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	page, err := params.ParsePage(r.URL.Query())
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	views, err := app.comments.ListCommentsByToilet(r.Context(), toiletID, getRequester(r), page)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, views); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listCommentsByUserHandler godoc
//
//	@Summary		List a user's comments
//	@Tags			comments
//	@Produce		json
//	@Param			userID		path		int		true	"User id"
//	@Param			userId		query		int		false	"Requester id"
//	@Param			pageable	query		bool	false	"Paginate the result"
//	@Param			page		query		int		false	"Zero based page index"
//	@Param			size		query		int		false	"Page size"	default(20)
//	@Success		200			{array}		enrich.CommentView
//	@Failure		404			{object}	error
//	@Router			/comments/users/{userID} [get]
func (app *application) listCommentsByUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	page, err := params.ParsePage(r.URL.Query())
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	views, err := app.comments.ListCommentsByUser(r.Context(), userID, getRequester(r), page)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, views); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCommentHandler godoc
//
//	@Summary		Get a comment
//	@Tags			comments
//	@Produce		json
//	@Param			commentID	path		int	true	"Comment id"
//	@Success		200			{object}	enrich.CommentView
//	@Failure		404			{object}	error
//	@Router			/comments/{commentID} [get]
func (app *application) getCommentHandler(w http.ResponseWriter, r *http.Request) {
	commentID, err := idParam(r, "commentID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	view, err := app.comments.GetComment(r.Context(), commentID)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createCommentHandler godoc
//
//	@Summary		Comment on a toilet
//	@Description	A bearer token user must match userId.
//	@Tags			comments
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		service.CreateCommentInput	true	"Comment"
//	@Success		201		{object}	enrich.CommentView
//	@Failure		400		{object}	error
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/comments [post]
func (app *application) createCommentHandler(w http.ResponseWriter, r *http.Request) {
	var payload service.CreateCommentInput
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

	view, err := app.comments.CreateComment(r.Context(), payload)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteCommentHandler godoc
//
//	@Summary		Delete a comment
//	@Tags			comments
//	@Produce		json
//	@Param			commentID	path		int	true	"Comment id"
//	@Success		200			{object}	map[string]string
//	@Failure		401			{object}	error
//	@Failure		404			{object}	error
//	@Security		BasicAuth
//	@Router			/comments/{commentID} [delete]
func (app *application) deleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	commentID, err := idParam(r, "commentID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.comments.DeleteComment(r.Context(), commentID); err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "comment deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
