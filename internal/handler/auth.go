package handler

import (
	"net/http"

	"github.com/itchan-dev/forum-api/internal/api"
	"github.com/itchan-dev/forum-api/internal/domain"
	"github.com/itchan-dev/forum-api/internal/utils"
)

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterUserRequest
	if err := h.decodeBody(w, r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.auth.Register(r.Context(), body.Username, body.Password, body.Fullname)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Response{
		Status: api.StatusSuccess,
		Data:   api.AddedUserData{AddedUser: user},
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := h.decodeBody(w, r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.auth.Login(r.Context(), domain.Credentials{Username: body.Username, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Response{
		Status: api.StatusSuccess,
		Data:   api.AccessTokenData{AccessToken: token},
	})
}
