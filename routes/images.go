package routes

import (
	"net/http"
	"sort"

	log "github.com/sirupsen/logrus"

	"photofeed/model"
	"photofeed/routes/common"
)

const (
	msgEmptySourceLink = "Image source link cannot be empty"
	msgEmptyCaption    = "Caption cannot be empty"
	msgNoValidCookie   = "There is no valid cookie to determine authenticity"
	msgImageUploaded   = "Image successfully uploaded"
)

type uploadPhotoRequest struct {
	SourceLink string `json:"source_link"`
	Caption    string `json:"caption"`
}

/**
[GET]
Returns the image store document exactly as persisted, JSON-encoded as a
string. The contributors page derives its user list from the same payload, as
uploaders are stored against their images.

Returns:
- 200: The raw document.
- 500: Image store could not be read.
*/
func (h *Handler) handleGetImageSources(w http.ResponseWriter, r *http.Request) {
	raw, err := h.store.RawImages()
	if err != nil {
		log.WithField("err", err).Error("could not read image store")
		common.SendInternalServerError(w)
		return
	}

	common.JSON(w, http.StatusOK, string(raw))
}

/**
[GET]
Tallies uploads per contributor and returns [user, count] pairs ordered by
count, ascending by default; ties keep first-upload order. Pass order=desc
for the descending variant.

Returns:
- 200: The ordered pairs.
- 500: Image store could not be read.
*/
func (h *Handler) handleGetUserLeaderboard(w http.ResponseWriter, r *http.Request) {
	library, err := h.store.LoadImages()
	if err != nil {
		log.WithField("err", err).Error("could not read image store")
		common.SendInternalServerError(w)
		return
	}

	counts := map[string]int{}
	order := []string{}

	for _, image := range library.Images {
		if _, seen := counts[image.User]; !seen {
			order = append(order, image.User)
		}
		counts[image.User]++
	}

	descending := r.URL.Query().Get("order") == "desc"

	sort.SliceStable(order, func(i, j int) bool {
		if descending {
			return counts[order[i]] > counts[order[j]]
		}
		return counts[order[i]] < counts[order[j]]
	})

	leaderboard := make([][]interface{}, 0, len(order))
	for _, user := range order {
		leaderboard = append(leaderboard, []interface{}{user, counts[user]})
	}

	common.JSON(w, http.StatusOK, leaderboard)
}

/**
[POST]
Appends a new image post. The uploader is taken from the session cookie, not
the body.

Returns:
- 200: Image recorded.
- 403: No valid session cookie.
- 422: Empty source link or caption.
- 500: Image store could not be read or written.
*/
func (h *Handler) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	var req uploadPhotoRequest
	if err := common.DecodeBody(r, &req); err != nil {
		common.Message(w, http.StatusBadRequest, common.MsgInvalidJSON)
		return
	}

	if req.SourceLink == "" {
		common.Message(w, http.StatusUnprocessableEntity, msgEmptySourceLink)
		return
	}

	if req.Caption == "" {
		common.Message(w, http.StatusUnprocessableEntity, msgEmptyCaption)
		return
	}

	email, ok := h.sessions.Email(r)
	if !ok {
		common.Message(w, http.StatusForbidden, msgNoValidCookie)
		return
	}

	library, err := h.store.LoadImages()
	if err != nil {
		log.WithField("err", err).Error("could not read image store")
		common.SendInternalServerError(w)
		return
	}

	library.Images = append(library.Images, model.ImagePost{
		Source:  req.SourceLink,
		User:    email,
		Caption: req.Caption,
	})

	if err := h.store.SaveImages(library); err != nil {
		log.WithField("err", err).Error("could not write image store")
		common.SendInternalServerError(w)
		return
	}

	common.Message(w, http.StatusOK, msgImageUploaded)
}
