package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"photofeed/config"
	"photofeed/database"
	"photofeed/routes/middleware"
)

// Session cookies live for 900 seconds, matching the front end's polling
// assumptions.
const sessionMaxAge = 900 * time.Second

// Handler carries the dependencies shared by every API operation.
type Handler struct {
	store    database.Store
	sessions *middleware.SessionIssuer
}

func NewHandler(store database.Store, cfg config.Config) *Handler {
	h := &Handler{store: store}

	h.sessions = &middleware.SessionIssuer{
		Secret: []byte(cfg.CookieSecret),
		MaxAge: sessionMaxAge,
		Strict: cfg.SessionStrict,
		Exists: h.accountExists,
	}

	return h
}

func (h *Handler) accountExists(email string) bool {
	credentials, err := h.store.LoadAccounts()
	if err != nil {
		log.WithField("err", err).Error("could not read account store for session check")
		return false
	}

	for _, account := range credentials.Accounts {
		if account.EmailAddress() == email {
			return true
		}
	}

	return false
}

// Register mounts the API routes, the disconnect-notification socket and the
// front door on the given router.
func (h *Handler) Register(r *mux.Router, publicDir string) {
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth", h.handleAuth).Methods("POST")
	api.HandleFunc("/newaccount", h.handleNewAccount).Methods("POST")
	api.HandleFunc("/deleteTestAccount", h.handleDeleteTestAccount).Methods("POST")
	api.HandleFunc("/checkperms", h.handleCheckPerms).Methods("GET")
	api.HandleFunc("/logout", h.handleLogout).Methods("GET")

	api.HandleFunc("/getImageSources", h.handleGetImageSources).Methods("GET")
	api.HandleFunc("/getUserLeaderboard", h.handleGetUserLeaderboard).Methods("GET")
	api.HandleFunc("/uploadPhoto", h.handleUploadPhoto).Methods("POST")

	api.HandleFunc("/getComments", h.handleGetComments).Methods("GET")
	api.HandleFunc("/submitComment", h.handleSubmitComment).Methods("POST")

	r.HandleFunc("/ws", h.handleNotifySocket).Methods("GET")

	r.PathPrefix("/").Handler(spaHandler{publicDir: publicDir})
}

// spaHandler serves static assets and falls back to the single-page shell for
// any path that does not map to a file.
type spaHandler struct {
	publicDir string
}

func (s spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(s.publicDir, filepath.Clean("/"+r.URL.Path))

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	http.ServeFile(w, r, filepath.Join(s.publicDir, "index.html"))
}
