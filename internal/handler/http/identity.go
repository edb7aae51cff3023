package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	h.authenticateAccount(w, r, "sign up", h.services.IdentityService.SignUp)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.authenticateAccount(w, r, "login", h.services.IdentityService.Login)
}

// authenticateAccount decodes an account, runs op and answers with the
// caller's token in the "Authorization" header.
func (h *Handler) authenticateAccount(w http.ResponseWriter, r *http.Request, name string,
	op func(context.Context, models.Account) (models.Account, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var account models.Account
	if err := decode(w, r, &account, smallBodyLimit); err != nil {
		fail(w, r, err, "invalid JSON was passed")
		return
	}

	found, err := op(ctx, account)
	if err != nil {
		fail(w, r, err, name+" failed")
		return
	}

	token, err := h.services.IdentityService.CreateToken(ctx, found.Principal)
	if err != nil {
		fail(w, r, err, "creation of token failed")
		return
	}

	log.Debug().Str("principal", found.Principal.String()).Msg(name + " succeeded")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
