package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/acme/account-service/internal/models"
	"github.com/acme/account-service/internal/repositories"
)

const (
	serviceName    = "Account REST API Service"
	serviceVersion = "1.0"

	contentTypeJSON = "application/json"

	accountNotFoundMessage = "Account wasnt found"
	internalErrorMessage   = "Internal server error"
)

type AccountHandler struct {
	repo repositories.AccountRepository
}

func NewAccountHandler(repo repositories.AccountRepository) *AccountHandler {
	return &AccountHandler{repo: repo}
}

func (h *AccountHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (h *AccountHandler) Index(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"name":    serviceName,
		"version": serviceVersion,
	})
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}

	account, err := models.DeserializeAccount(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Create(r.Context(), account); err != nil {
		log.Printf("create account: %v", err)
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/accounts/%d", account.ID))
	respondJSON(w, http.StatusCreated, account)
}

func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.repo.List(r.Context())
	if err != nil {
		log.Printf("list accounts: %v", err)
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	respondJSON(w, http.StatusOK, accounts)
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, ok := h.findAccount(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}

	payload, err := models.DeserializeAccount(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	account, ok := h.findAccount(w, r)
	if !ok {
		return
	}

	payload.ID = account.ID
	if err := h.repo.Update(r.Context(), payload); err != nil {
		// row can vanish between the lookup and the update
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(w, http.StatusNotFound, accountNotFoundMessage)
			return
		}
		log.Printf("update account %d: %v", account.ID, err)
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respondJSON(w, http.StatusOK, payload)
}

// DeleteAccount always answers 204, whether or not the row existed.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		log.Printf("delete account %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// findAccount resolves the {id} path parameter to a stored account, writing
// the 404/500 response itself when the lookup fails.
func (h *AccountHandler) findAccount(w http.ResponseWriter, r *http.Request) (*models.Account, bool) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusNotFound, accountNotFoundMessage)
		return nil, false
	}

	account, err := h.repo.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		respondError(w, http.StatusNotFound, accountNotFoundMessage)
		return nil, false
	}
	if err != nil {
		log.Printf("get account %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, internalErrorMessage)
		return nil, false
	}
	return account, true
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// requireJSON enforces the Content-Type before any body parsing happens.
// Media type parameters such as a charset are accepted.
func requireJSON(w http.ResponseWriter, r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != contentTypeJSON {
		log.Printf("invalid Content-Type: %q", r.Header.Get("Content-Type"))
		respondError(w, http.StatusUnsupportedMediaType,
			fmt.Sprintf("Content-Type must be %s", contentTypeJSON))
		return false
	}
	return true
}
