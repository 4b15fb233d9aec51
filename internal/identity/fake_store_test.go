package identity

// fakeStore is an in-memory Store used by unit tests. Its uniqueness
// behavior mirrors the database's unique indexes.
type fakeStore struct {
	accounts map[uint]*Account
	sessions map[string]*Session
	nextID   uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts: make(map[uint]*Account),
		sessions: make(map[string]*Session),
		nextID:   1,
	}
}

func (f *fakeStore) FindByID(id uint) (*Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeStore) FindByUsername(username string) (*Account, error) {
	for _, a := range f.accounts {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (f *fakeStore) FindByEmail(email string) (*Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (f *fakeStore) UsernameTaken(username string, excludeID uint) (bool, error) {
	for _, a := range f.accounts {
		if a.Username == username && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) EmailTaken(email string, excludeID uint) (bool, error) {
	for _, a := range f.accounts {
		if a.Email == email && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Create(a *Account) error {
	if taken, _ := f.UsernameTaken(a.Username, 0); taken {
		return &ValidationError{Field: "username", Reason: ReasonTaken}
	}
	if taken, _ := f.EmailTaken(a.Email, 0); taken {
		return &ValidationError{Field: "email", Reason: ReasonTaken}
	}
	a.ID = f.nextID
	f.nextID++
	cp := *a
	f.accounts[a.ID] = &cp
	return nil
}

func (f *fakeStore) Save(a *Account) error {
	if taken, _ := f.UsernameTaken(a.Username, a.ID); taken {
		return &ValidationError{Field: "username", Reason: ReasonTaken}
	}
	if taken, _ := f.EmailTaken(a.Email, a.ID); taken {
		return &ValidationError{Field: "email", Reason: ReasonTaken}
	}
	cp := *a
	f.accounts[a.ID] = &cp
	return nil
}

func (f *fakeStore) UpsertSession(s *Session) error {
	for id, existing := range f.sessions {
		if existing.AccountID == s.AccountID {
			delete(f.sessions, id)
		}
	}
	cp := *s
	f.sessions[s.SessionID] = &cp
	return nil
}

func (f *fakeStore) FindSessionByID(id string) (*Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStore) DeleteSession(id string) error {
	delete(f.sessions, id)
	return nil
}

func (f *fakeStore) RefreshSnapshot(a *Account) error {
	for _, s := range f.sessions {
		if s.AccountID == a.ID {
			s.Username = a.Username
			s.Email = a.Email
			s.Role = a.Role
			s.AvatarPath = a.AvatarPath
		}
	}
	return nil
}
