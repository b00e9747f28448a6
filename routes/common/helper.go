package common

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// GenericErrorMessage is the only detail a client gets about a storage
// failure; specifics stay in the server log.
const GenericErrorMessage = "An error has occurred. Please try again."

// MsgInvalidJSON is returned for request bodies that cannot be parsed.
const MsgInvalidJSON = "Request is not valid JSON"

var emailPattern = regexp.MustCompile("^(?:[a-z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-z0-9!#$%&'*+/=?^_`{|}~-]+)*|\"(?:[\\x01-\\x08\\x0b\\x0c\\x0e-\\x1f\\x21\\x23-\\x5b\\x5d-\\x7f]|\\\\[\\x01-\\x09\\x0b\\x0c\\x0e-\\x7f])*\")@(?:(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?|\\[(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?|[a-z0-9-]*[a-z0-9]:(?:[\\x01-\\x08\\x0b\\x0c\\x0e-\\x1f\\x21-\\x5a\\x53-\\x7f]|\\\\[\\x01-\\x09\\x0b\\x0c\\x0e-\\x7f])+)\\])$")

// ValidEmail reports whether the given string is a well-formed email address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.ToLower(email))
}

// DecodeBody fills dst from a JSON request body, falling back to form values
// for form-encoded submissions. dst may be a pointer to a struct or to a
// map[string]interface{}.
func DecodeBody(r *http.Request, dst interface{}) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return json.NewDecoder(r.Body).Decode(dst)
	}

	if err := r.ParseForm(); err != nil {
		return err
	}

	form := map[string]string{}
	for key, values := range r.PostForm {
		if len(values) > 0 {
			form[key] = values[0]
		}
	}

	data, err := json.Marshal(form)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dst)
}

// JSON writes v as the whole response body.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error while writing response: " + err.Error())
	}
}

// Message writes a {"message": ...} response.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}

// Results writes a {"results": ...} response.
func Results(w http.ResponseWriter, status int, results interface{}) {
	JSON(w, status, map[string]interface{}{"results": results})
}

func SendInternalServerError(w http.ResponseWriter) {
	Message(w, http.StatusInternalServerError, GenericErrorMessage)
}
