package routes

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"photofeed/model"
	"photofeed/routes/common"
)

// Account endpoint messages. They are part of the API surface; the front end
// matches on them.
const (
	msgLoggedIn        = "Successfully logged in"
	msgBadCredentials  = "Those credentials are incorrect"
	msgInvalidEmail    = "A valid email address must be provided"
	msgEmptyPassword   = "Password cannot be empty"
	msgEmailTaken      = "That email address is already in use"
	msgRegistered      = "Account successfully registered"
	msgAccountDeleted  = "Account successfully deleted"
	msgAuthenticated   = "authenticated"
	msgUnauthenticated = "unauthenticated"
)

// testAccountEmail is the sentinel the end-to-end suite registers;
// deleteTestAccount removes every record matching it.
const testAccountEmail = "test098@testing345test.com"

type credentialsRequest struct {
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
}

/**
[POST]
Checks the submitted credentials against the account store and starts a
session when they match exactly.

Returns:
- 200: Credentials match; session cookie set.
- 401: No account matches.
- 422: Malformed email, or empty password.
- 500: Account store could not be read.
*/
func (h *Handler) handleAuth(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := common.DecodeBody(r, &req); err != nil {
		common.Message(w, http.StatusBadRequest, common.MsgInvalidJSON)
		return
	}

	if !common.ValidEmail(req.EmailAddress) {
		common.Message(w, http.StatusUnprocessableEntity, msgInvalidEmail)
		return
	}

	if req.Password == "" {
		common.Message(w, http.StatusUnprocessableEntity, msgEmptyPassword)
		return
	}

	credentials, err := h.store.LoadAccounts()
	if err != nil {
		log.WithField("err", err).Error("could not read account store")
		common.SendInternalServerError(w)
		return
	}

	for _, account := range credentials.Accounts {
		if account.EmailAddress() == req.EmailAddress && account.Password() == req.Password {
			h.startSession(w, req.EmailAddress, msgLoggedIn)
			return
		}
	}

	common.Message(w, http.StatusUnauthorized, msgBadCredentials)
}

/**
[POST]
Registers a new account. The submitted body is persisted verbatim, so any
extra fields survive alongside email_address and password.

Returns:
- 200: Account created; session cookie set.
- 409: Email already registered; the store is left untouched.
- 422: Malformed email, or empty password.
- 500: Account store could not be read or written.
*/
func (h *Handler) handleNewAccount(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if err := common.DecodeBody(r, &body); err != nil {
		common.Message(w, http.StatusBadRequest, common.MsgInvalidJSON)
		return
	}

	account := model.Account(body)

	if !common.ValidEmail(account.EmailAddress()) {
		common.Message(w, http.StatusUnprocessableEntity, msgInvalidEmail)
		return
	}

	if account.Password() == "" {
		common.Message(w, http.StatusUnprocessableEntity, msgEmptyPassword)
		return
	}

	credentials, err := h.store.LoadAccounts()
	if err != nil {
		log.WithField("err", err).Error("could not read account store")
		common.SendInternalServerError(w)
		return
	}

	for _, existing := range credentials.Accounts {
		if existing.EmailAddress() == account.EmailAddress() {
			common.Message(w, http.StatusConflict, msgEmailTaken)
			return
		}
	}

	credentials.Accounts = append(credentials.Accounts, account)

	if err := h.store.SaveAccounts(credentials); err != nil {
		log.WithField("err", err).Error("could not write account store")
		common.SendInternalServerError(w)
		return
	}

	h.startSession(w, account.EmailAddress(), msgRegistered)
}

/**
[POST]
Removes every account matching the test sentinel email and responds 200 even
if none matched. Used by the end-to-end suite to clean up after itself.
*/
func (h *Handler) handleDeleteTestAccount(w http.ResponseWriter, r *http.Request) {
	credentials, err := h.store.LoadAccounts()
	if err != nil {
		log.WithField("err", err).Error("could not read account store")
		common.SendInternalServerError(w)
		return
	}

	kept := credentials.Accounts[:0]
	for _, account := range credentials.Accounts {
		if account.EmailAddress() != testAccountEmail {
			kept = append(kept, account)
		}
	}
	credentials.Accounts = kept

	if err := h.store.SaveAccounts(credentials); err != nil {
		log.WithField("err", err).Error("could not write account store")
		common.SendInternalServerError(w)
		return
	}

	common.Message(w, http.StatusOK, msgAccountDeleted)
}

// Polled by every page render; always responds 200.
func (h *Handler) handleCheckPerms(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Email(r); ok {
		common.Message(w, http.StatusOK, msgAuthenticated)
	} else {
		common.Message(w, http.StatusOK, msgUnauthenticated)
	}
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessions.Revoke())
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) startSession(w http.ResponseWriter, email string, message string) {
	cookie, err := h.sessions.Issue(email)
	if err != nil {
		log.WithField("err", err).Error("could not sign session cookie")
		common.SendInternalServerError(w)
		return
	}

	http.SetCookie(w, cookie)
	common.Message(w, http.StatusOK, message)
}
