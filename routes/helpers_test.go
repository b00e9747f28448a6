package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"photofeed/config"
	"photofeed/database"
	"photofeed/model"
	"photofeed/routes/middleware"
)

const testSecret = "secret"

func newTestRouter(store database.Store, strict bool) *mux.Router {
	cfg := config.Config{CookieSecret: testSecret, SessionStrict: strict}

	r := mux.NewRouter()
	NewHandler(store, cfg).Register(r, "testdata")

	return r
}

func sessionCookie(t *testing.T, email string) *http.Cookie {
	t.Helper()

	issuer := &middleware.SessionIssuer{Secret: []byte(testSecret), MaxAge: sessionMaxAge}

	cookie, err := issuer.Issue(email)
	require.NoError(t, err)

	return cookie
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	return req
}

func doRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Message
}

func seedAccounts(t *testing.T, store database.Store, accounts ...model.Account) {
	t.Helper()
	require.NoError(t, store.SaveAccounts(model.Credentials{Accounts: accounts}))
}

func account(email, password string) model.Account {
	return model.Account{"email_address": email, "password": password}
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// failStore fails every read; only the methods a test exercises matter.
type failStore struct {
	database.Store
}

func (failStore) LoadAccounts() (model.Credentials, error) {
	return model.Credentials{}, errors.New("disk failure")
}

func (failStore) RawImages() ([]byte, error) {
	return nil, errors.New("disk failure")
}

// saveFailStore reads from the embedded store but refuses all writes.
type saveFailStore struct {
	database.Store
}

func (s saveFailStore) SaveAccounts(model.Credentials) error {
	return errors.New("disk full")
}

func (s saveFailStore) SaveImages(model.ImageLibrary) error {
	return errors.New("disk full")
}
