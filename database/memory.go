package database

import (
	"encoding/json"
	"sync"

	"photofeed/model"
)

// MemStore implements Store in memory. Handler tests run against it instead
// of a temp directory full of JSON files.
type MemStore struct {
	mu       sync.Mutex
	accounts model.Credentials
	images   model.ImageLibrary
	comments model.CommentLog
}

func NewMemStore() *MemStore {
	return &MemStore{comments: model.CommentLog{}}
}

func (s *MemStore) LoadAccounts() (model.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return model.Credentials{
		Accounts: append([]model.Account(nil), s.accounts.Accounts...),
	}, nil
}

func (s *MemStore) SaveAccounts(credentials model.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = credentials
	return nil
}

func (s *MemStore) LoadImages() (model.ImageLibrary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return model.ImageLibrary{
		Images: append([]model.ImagePost(nil), s.images.Images...),
	}, nil
}

func (s *MemStore) SaveImages(library model.ImageLibrary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.images = library
	return nil
}

func (s *MemStore) RawImages() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return json.Marshal(s.images)
}

func (s *MemStore) LoadComments() (model.CommentLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments := model.CommentLog{}
	for source, list := range s.comments {
		comments[source] = append([]model.Comment(nil), list...)
	}

	return comments, nil
}

func (s *MemStore) SaveComments(comments model.CommentLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.comments = comments
	return nil
}

func (s *MemStore) RawComments() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return json.Marshal(s.comments)
}
