package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum-api/internal/api"
	"github.com/itchan-dev/forum-api/internal/utils"
)

func (h *Handler) AddReply(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.CreateReplyRequest
	if err := h.decodeBody(w, r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.reply.Add(r.Context(), chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), body.Content, user.Username)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Response{
		Status: api.StatusSuccess,
		Data:   api.AddedReplyData{AddedReply: added},
	})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	err = h.reply.Delete(r.Context(),
		chi.URLParam(r, "threadId"),
		chi.URLParam(r, "commentId"),
		chi.URLParam(r, "replyId"),
		user.Username,
	)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Response{Status: api.StatusSuccess})
}
