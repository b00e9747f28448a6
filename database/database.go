package database

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"photofeed/model"
)

const (
	accountsFile = "accounts.json"
	imagesFile   = "images.json"
	commentsFile = "comments.json"
)

// Store is the persistence contract shared by every handler: read a whole
// collection, mutate it in memory, write the whole collection back. The raw
// accessors return a collection's document exactly as persisted, for the
// endpoints that echo it to the client.
type Store interface {
	LoadAccounts() (model.Credentials, error)
	SaveAccounts(model.Credentials) error

	LoadImages() (model.ImageLibrary, error)
	SaveImages(model.ImageLibrary) error
	RawImages() ([]byte, error)

	LoadComments() (model.CommentLog, error)
	SaveComments(model.CommentLog) error
	RawComments() ([]byte, error)
}

// FileStore keeps each collection in a flat JSON file under one directory.
// A mutex per collection keeps individual reads and writes from tearing each
// other; the read-modify-write window between a handler's load and its save
// is not covered, so concurrent mutations of the same collection remain
// last-writer-wins.
type FileStore struct {
	dir string

	accountsMu sync.Mutex
	imagesMu   sync.Mutex
	commentsMu sync.Mutex
}

// Open returns a FileStore rooted at dir, seeding empty documents for any
// collection file that does not exist yet.
func Open(dir string) (*FileStore, error) {
	seeds := map[string][]byte{
		accountsFile: []byte(`{"accounts":[]}`),
		imagesFile:   []byte(`{"images":[]}`),
		commentsFile: []byte(`{}`),
	}

	for name, doc := range seeds {
		path := filepath.Join(dir, name)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			if writeErr := os.WriteFile(path, doc, 0644); writeErr != nil {
				return nil, writeErr
			}
		} else if err != nil {
			return nil, err
		}
	}

	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *FileStore) LoadAccounts() (model.Credentials, error) {
	s.accountsMu.Lock()
	defer s.accountsMu.Unlock()

	var credentials model.Credentials
	if err := readJSON(s.path(accountsFile), &credentials); err != nil {
		return model.Credentials{}, err
	}

	return credentials, nil
}

func (s *FileStore) SaveAccounts(credentials model.Credentials) error {
	s.accountsMu.Lock()
	defer s.accountsMu.Unlock()

	return writeJSON(s.path(accountsFile), credentials)
}

func (s *FileStore) LoadImages() (model.ImageLibrary, error) {
	s.imagesMu.Lock()
	defer s.imagesMu.Unlock()

	var library model.ImageLibrary
	if err := readJSON(s.path(imagesFile), &library); err != nil {
		return model.ImageLibrary{}, err
	}

	return library, nil
}

func (s *FileStore) SaveImages(library model.ImageLibrary) error {
	s.imagesMu.Lock()
	defer s.imagesMu.Unlock()

	return writeJSON(s.path(imagesFile), library)
}

func (s *FileStore) RawImages() ([]byte, error) {
	s.imagesMu.Lock()
	defer s.imagesMu.Unlock()

	return os.ReadFile(s.path(imagesFile))
}

func (s *FileStore) LoadComments() (model.CommentLog, error) {
	s.commentsMu.Lock()
	defer s.commentsMu.Unlock()

	var comments model.CommentLog
	if err := readJSON(s.path(commentsFile), &comments); err != nil {
		return nil, err
	}

	return comments, nil
}

func (s *FileStore) SaveComments(comments model.CommentLog) error {
	s.commentsMu.Lock()
	defer s.commentsMu.Unlock()

	return writeJSON(s.path(commentsFile), comments)
}

func (s *FileStore) RawComments() ([]byte, error) {
	s.commentsMu.Lock()
	defer s.commentsMu.Unlock()

	return os.ReadFile(s.path(commentsFile))
}

func readJSON(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dst)
}

func writeJSON(path string, src interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
