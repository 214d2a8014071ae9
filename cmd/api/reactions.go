package main

import (
	"errors"
	"net/http"

	"wot/internal/params"
	"wot/internal/service"
)

var errRequesterRequired = errors.New("userId is required")

// listReactionsHandler godoc
//
//	@Summary		List the requester's reactions
//	@Tags			reactions
//	@Produce		json
//	@Param			userId		query		int		true	"Requester id"
//	@Param			commentIds	query		string	false	"Comma separated comment ids"
//	@Success		200			{array}		reactions.Reaction
//	@Failure		400			{object}	error
//	@Router			/comments/reactions [get]
func (app *application) listReactionsHandler(w http.ResponseWriter, r *http.Request) {
	requester := getRequester(r)
	if requester == nil {
		app.badRequestResponse(w, r, errRequesterRequired)
		return
	}
	commentIDs, err := params.Int64List(r.URL.Query(), "commentIds")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	out, err := app.comments.ListReactions(r.Context(), *requester, commentIDs)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, out); err != nil {
		app.internalServerError(w, r, err)
	}
}

// putReactionHandler godoc
//
//	@Summary		React to a comment
//	@Description	Replaces the user's previous reaction. Hiding types hide the comment from that user.
//	@Tags			reactions
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		service.ReactionInput	true	"Reaction"
//	@Success		200		{object}	enrich.CommentView
//	@Failure		400		{object}	error
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/comments/reactions [post]
func (app *application) putReactionHandler(w http.ResponseWriter, r *http.Request) {
	var payload service.ReactionInput
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

	view, err := app.comments.PutReaction(r.Context(), payload)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteReactionHandler godoc
//
//	@Summary		Remove the requester's reaction
//	@Tags			reactions
//	@Produce		json
//	@Param			commentId	query		int	true	"Comment id"
//	@Param			userId		query		int	true	"Requester id"
//	@Success		200			{object}	map[string]string
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Router			/comments/reactions [delete]
func (app *application) deleteReactionHandler(w http.ResponseWriter, r *http.Request) {
	requester := getRequester(r)
	if requester == nil {
		app.badRequestResponse(w, r, errRequesterRequired)
		return
	}
	commentID, err := params.OptionalInt64(r.URL.Query(), "commentId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if commentID == nil {
		app.badRequestResponse(w, r, errors.New("commentId is required"))
		return
	}

	if err := app.comments.DeleteReaction(r.Context(), *commentID, *requester); err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "reaction deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
