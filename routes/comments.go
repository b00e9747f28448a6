package routes

import (
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"

	"photofeed/model"
	"photofeed/routes/common"
)

const (
	msgEmptyComment    = "Comment cannot be empty"
	msgCommentUploaded = "Comment successfully uploaded"
	msgNoCommentsYet   = "No comments have been submitted for this photo yet."
)

type submitCommentRequest struct {
	SourceLink string `json:"source_link"`
	Comment    string `json:"comment"`
}

/**
[GET]
With a source parameter, returns that photo's comments in submission order,
or a placeholder string when nobody has commented yet; absence of comments is
not an error. Without a parameter, returns the whole comment document as
persisted.

Returns:
- 200: The comments, the placeholder, or the raw document.
- 500: Comment store could not be read.
*/
func (h *Handler) handleGetComments(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")

	if source == "" {
		raw, err := h.store.RawComments()
		if err != nil {
			log.WithField("err", err).Error("could not read comment store")
			common.Results(w, http.StatusInternalServerError, common.GenericErrorMessage)
			return
		}

		common.Results(w, http.StatusOK, string(raw))
		return
	}

	comments, err := h.store.LoadComments()
	if err != nil {
		log.WithField("err", err).Error("could not read comment store")
		common.Results(w, http.StatusInternalServerError, common.GenericErrorMessage)
		return
	}

	if list, ok := comments[source]; ok && len(list) > 0 {
		common.Results(w, http.StatusOK, list)
		return
	}

	common.Results(w, http.StatusOK, msgNoCommentsYet)
}

/**
[POST]
Appends a comment to the photo named by source_link, creating the photo's
entry on first comment. The commenter is taken from the session cookie.

Returns:
- 200: Comment recorded.
- 403: No valid session cookie.
- 422: Empty source link or comment.
- 500: Comment store could not be read or written.
*/
func (h *Handler) handleSubmitComment(w http.ResponseWriter, r *http.Request) {
	var req submitCommentRequest
	if err := common.DecodeBody(r, &req); err != nil {
		common.Message(w, http.StatusBadRequest, common.MsgInvalidJSON)
		return
	}

	if req.SourceLink == "" {
		common.Message(w, http.StatusUnprocessableEntity, msgEmptySourceLink)
		return
	}

	if req.Comment == "" {
		common.Message(w, http.StatusUnprocessableEntity, msgEmptyComment)
		return
	}

	email, ok := h.sessions.Email(r)
	if !ok {
		common.Message(w, http.StatusForbidden, msgNoValidCookie)
		return
	}

	comments, err := h.store.LoadComments()
	if err != nil {
		log.WithField("err", err).Error("could not read comment store")
		common.SendInternalServerError(w)
		return
	}

	// The front end URL-encodes the source link before submitting it; the
	// comment key is the decoded form.
	source := req.SourceLink
	if decoded, decodeErr := url.QueryUnescape(source); decodeErr == nil {
		source = decoded
	}

	if comments == nil {
		comments = model.CommentLog{}
	}

	comments[source] = append(comments[source], model.Comment{
		EmailAddress: email,
		Comment:      req.Comment,
	})

	if err := h.store.SaveComments(comments); err != nil {
		log.WithField("err", err).Error("could not write comment store")
		common.SendInternalServerError(w)
		return
	}

	common.Message(w, http.StatusOK, msgCommentUploaded)
}
