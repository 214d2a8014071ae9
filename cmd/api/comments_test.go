package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wot/internal/apperr"
	"wot/internal/domain/reactions"
	"wot/internal/enrich"
	"wot/internal/params"
	"wot/internal/service"
)

func TestListCommentsByToiletHandler(t *testing.T) {
	app, _, comments := newTestApplication(t)
	comments.On("ListCommentsByToilet", mock.Anything, int64(3), ptr(int64(7)), (*params.Page)(nil)).
		Return([]enrich.CommentView{{ID: 5, ToiletID: 3, UserID: 7}}, nil)

	rr := executeRequest(newRequest(t, http.MethodGet, "/v1/comments/toilets/3?userId=7", ""), app.mount())

	require.Equal(t, http.StatusOK, rr.Code)
	var views []enrich.CommentView
	decodeData(t, rr, &views)
	require.Len(t, views, 1)
	assert.Equal(t, int64(5), views[0].ID)
}

func TestListCommentsByUserHandler(t *testing.T) {
	app, _, comments := newTestApplication(t)
	comments.On("ListCommentsByUser", mock.Anything, int64(2), (*int64)(nil), &params.Page{Index: 0, Size: params.DefaultPageSize}).
		Return([]enrich.CommentView{}, nil)

	rr := executeRequest(newRequest(t, http.MethodGet, "/v1/comments/users/2?pageable=true", ""), app.mount())

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetCommentHandler_NotFound(t *testing.T) {
	app, _, comments := newTestApplication(t)
	comments.On("GetComment", mock.Anything, int64(5)).Return(nil, apperr.NotFound("Comment", "id", "5"))

	rr := executeRequest(newRequest(t, http.MethodGet, "/v1/comments/5", ""), app.mount())

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, `Comment with id "5" not found`, decodeError(t, rr).Message)
}

func TestCreateCommentHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		app, _, comments := newTestApplication(t)
		in := service.CreateCommentInput{
			ToiletID: 3, UserID: 7, Text: "ok",
			RatingClean: 4, RatingPaper: true, RatingStructure: 3, RatingAccessibility: 5,
		}
		comments.On("CreateComment", mock.Anything, in).Return(&enrich.CommentView{ID: 21, ToiletID: 3, UserID: 7}, nil)

		body := `{"toiletId":3,"userId":7,"text":"ok","ratingClean":4,"ratingPaper":true,"ratingStructure":3,"ratingAccessibility":5}`
		rr := executeRequest(newRequest(t, http.MethodPost, "/v1/comments", body), app.mount())

		require.Equal(t, http.StatusCreated, rr.Code)
		var view enrich.CommentView
		decodeData(t, rr, &view)
		assert.Equal(t, int64(21), view.ID)
	})

	t.Run("token user overrides a missing body userId", func(t *testing.T) {
		app, _, comments := newTestApplication(t)
		in := service.CreateCommentInput{ToiletID: 3, UserID: 7, RatingClean: 4, RatingStructure: 3, RatingAccessibility: 5}
		comments.On("CreateComment", mock.Anything, in).Return(&enrich.CommentView{ID: 22, ToiletID: 3, UserID: 7}, nil)

		req := newRequest(t, http.MethodPost, "/v1/comments", `{"toiletId":3,"ratingClean":4,"ratingStructure":3,"ratingAccessibility":5}`)
		req.Header.Set("Authorization", bearerToken(t, 7))
		rr := executeRequest(req, app.mount())

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("body userId cannot impersonate the token user", func(t *testing.T) {
		app, _, comments := newTestApplication(t)

		req := newRequest(t, http.MethodPost, "/v1/comments", `{"toiletId":3,"userId":99,"ratingClean":4,"ratingStructure":3,"ratingAccessibility":5}`)
		req.Header.Set("Authorization", bearerToken(t, 7))
		rr := executeRequest(req, app.mount())

		require.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "userId does not match the authenticated user", decodeError(t, rr).Message)
		comments.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
	})

	t.Run("rating out of range", func(t *testing.T) {
		app, _, _ := newTestApplication(t)

		body := `{"toiletId":3,"userId":7,"ratingClean":9,"ratingStructure":3,"ratingAccessibility":5}`
		rr := executeRequest(newRequest(t, http.MethodPost, "/v1/comments", body), app.mount())

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteCommentHandler(t *testing.T) {
	t.Run("requires basic auth", func(t *testing.T) {
		app, _, _ := newTestApplication(t)

		rr := executeRequest(newRequest(t, http.MethodDelete, "/v1/comments/5", ""), app.mount())

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("WWW-Authenticate"))
	})

	t.Run("wrong password", func(t *testing.T) {
		app, _, _ := newTestApplication(t)

		req := newRequest(t, http.MethodDelete, "/v1/comments/5", "")
		req.Header.Set("Authorization", basicAuth(testBasicUser, "nope"))
		rr := executeRequest(req, app.mount())

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("deleted", func(t *testing.T) {
		app, _, comments := newTestApplication(t)
		comments.On("DeleteComment", mock.Anything, int64(5)).Return(nil)

		req := newRequest(t, http.MethodDelete, "/v1/comments/5", "")
		req.Header.Set("Authorization", basicAuth(testBasicUser, testBasicPass))
		rr := executeRequest(req, app.mount())

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestReactionHandlers(t *testing.T) {
	t.Run("list needs a requester", func(t *testing.T) {
		app, _, _ := newTestApplication(t)

		rr := executeRequest(newRequest(t, http.MethodGet, "/v1/comments/reactions", ""), app.mount())

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "userId is required", decodeError(t, rr).Message)
	})

	t.Run("list", func(t *testing.T) {
		app, _, comments := newTestApplication(t)
		comments.On("ListReactions", mock.Anything, int64(7), []int64{5, 6}).
			Return([]reactions.Reaction{{ID: 1, CommentID: 5, UserID: 7, Type: "like"}}, nil)

		rr := executeRequest(newRequest(t, http.MethodGet, "/v1/comments/reactions?userId=7&commentIds=5,6", ""), app.mount())

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("put", func(t *testing.T) {
		app, _, comments := newTestApplication(t)
		comments.On("PutReaction", mock.Anything, service.ReactionInput{CommentID: 5, UserID: 7, Type: "spam"}).
			Return(&enrich.CommentView{ID: 5}, nil)

		rr := executeRequest(newRequest(t, http.MethodPost, "/v1/comments/reactions", `{"commentId":5,"userId":7,"type":"spam"}`), app.mount())

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("put with a body userId other than the token user", func(t *testing.T) {
		app, _, comments := newTestApplication(t)

		req := newRequest(t, http.MethodPost, "/v1/comments/reactions", `{"commentId":5,"userId":99,"type":"spam"}`)
		req.Header.Set("Authorization", bearerToken(t, 7))
		rr := executeRequest(req, app.mount())

		assert.Equal(t, http.StatusForbidden, rr.Code)
		comments.AssertNotCalled(t, "PutReaction", mock.Anything, mock.Anything)
	})

	t.Run("put with a matching body userId", func(t *testing.T) {
		app, _, comments := newTestApplication(t)
		comments.On("PutReaction", mock.Anything, service.ReactionInput{CommentID: 5, UserID: 7, Type: "like"}).
			Return(&enrich.CommentView{ID: 5}, nil)

		req := newRequest(t, http.MethodPost, "/v1/comments/reactions", `{"commentId":5,"userId":7,"type":"like"}`)
		req.Header.Set("Authorization", bearerToken(t, 7))
		rr := executeRequest(req, app.mount())

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("delete", func(t *testing.T) {
		app, _, comments := newTestApplication(t)
		comments.On("DeleteReaction", mock.Anything, int64(5), int64(7)).Return(nil)

		req := newRequest(t, http.MethodDelete, "/v1/comments/reactions?commentId=5", "")
		req.Header.Set("Authorization", bearerToken(t, "7"))
		rr := executeRequest(req, app.mount())

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
