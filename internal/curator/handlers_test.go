package curator

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CuratorSpace/CS-Backend/internal/utils"
)

// fakeStore keeps applications in memory. countMiss makes CountForAccount
// report zero even when a row exists, mimicking a concurrent submission that
// landed between the count and the insert; Create then rejects the duplicate
// the way the unique index on account_id does.
type fakeStore struct {
	apps      map[uint][]Application
	nextID    uint
	countMiss bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{apps: make(map[uint][]Application), nextID: 1}
}

func (f *fakeStore) CountForAccount(accountID uint) (int64, error) {
	if f.countMiss {
		return 0, nil
	}
	return int64(len(f.apps[accountID])), nil
}

func (f *fakeStore) Create(app *Application) error {
	if len(f.apps[app.AccountID]) > 0 {
		return ErrAlreadySubmitted
	}
	app.ID = f.nextID
	f.nextID++
	f.apps[app.AccountID] = append(f.apps[app.AccountID], *app)
	return nil
}

func (f *fakeStore) ListForAccount(accountID uint) ([]Application, error) {
	return f.apps[accountID], nil
}

func (f *fakeStore) ListAll() ([]Application, error) {
	var all []Application
	for _, apps := range f.apps {
		all = append(all, apps...)
	}
	return all, nil
}

func submitRequest(t *testing.T, principal *utils.Principal, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/applications", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if principal != nil {
		ctx := context.WithValue(req.Context(), utils.ContextPrincipalKey, *principal)
		req = req.WithContext(ctx)
	}
	return req
}

func applicationFields() map[string]string {
	return map[string]string{
		"first_name":    "Ada",
		"last_name":     "Lovelace",
		"date_of_birth": "1990-12-10",
		"certification": "MA Art History",
	}
}

func TestSubmitCreatesApplication(t *testing.T) {
	store = newFakeStore()

	principal := &utils.Principal{AccountID: 7, Username: "ada"}
	rr := httptest.NewRecorder()
	SubmitHandler(rr, submitRequest(t, principal, applicationFields()))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d; body: %s", rr.Code, rr.Body.String())
	}

	var app Application
	if err := json.Unmarshal(rr.Body.Bytes(), &app); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if app.AccountID != 7 {
		t.Errorf("expected account_id 7, got %d", app.AccountID)
	}
	if app.FirstName != "Ada" {
		t.Errorf("expected first_name Ada, got %q", app.FirstName)
	}
}

func TestSubmitRequiresSession(t *testing.T) {
	store = newFakeStore()

	rr := httptest.NewRecorder()
	SubmitHandler(rr, submitRequest(t, nil, applicationFields()))

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a session, got %d", rr.Code)
	}
}

func TestSubmitRejectsSecondApplication(t *testing.T) {
	store = newFakeStore()

	principal := &utils.Principal{AccountID: 7, Username: "ada"}

	rr := httptest.NewRecorder()
	SubmitHandler(rr, submitRequest(t, principal, applicationFields()))
	if rr.Code != http.StatusCreated {
		t.Fatalf("first submission failed: %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	SubmitHandler(rr, submitRequest(t, principal, applicationFields()))
	if rr.Code != http.StatusConflict {
		t.Errorf("expected 409 for a second submission, got %d", rr.Code)
	}
}

func TestSubmitRejectsDuplicateWhenCountRaces(t *testing.T) {
	fs := newFakeStore()
	store = fs

	principal := &utils.Principal{AccountID: 7, Username: "ada"}

	rr := httptest.NewRecorder()
	SubmitHandler(rr, submitRequest(t, principal, applicationFields()))
	if rr.Code != http.StatusCreated {
		t.Fatalf("first submission failed: %d", rr.Code)
	}

	// The count sees nothing, so the insert itself must reject the duplicate.
	fs.countMiss = true

	rr = httptest.NewRecorder()
	SubmitHandler(rr, submitRequest(t, principal, applicationFields()))
	if rr.Code != http.StatusConflict {
		t.Errorf("expected 409 when the duplicate slips past the count, got %d", rr.Code)
	}

	if got := len(fs.apps[7]); got != 1 {
		t.Errorf("expected a single stored application, got %d", got)
	}
}

func TestSubmitRejectsBadDateOfBirth(t *testing.T) {
	store = newFakeStore()

	fields := applicationFields()
	fields["date_of_birth"] = "12/10/1990"

	principal := &utils.Principal{AccountID: 7, Username: "ada"}
	rr := httptest.NewRecorder()
	SubmitHandler(rr, submitRequest(t, principal, fields))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a malformed date, got %d", rr.Code)
	}
}

func TestMineListsOwnApplications(t *testing.T) {
	store = newFakeStore()

	ada := &utils.Principal{AccountID: 7, Username: "ada"}
	grace := &utils.Principal{AccountID: 8, Username: "grace"}

	rr := httptest.NewRecorder()
	SubmitHandler(rr, submitRequest(t, ada, applicationFields()))
	if rr.Code != http.StatusCreated {
		t.Fatalf("submission failed: %d", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/applications/mine", nil)
	req = req.WithContext(context.WithValue(req.Context(), utils.ContextPrincipalKey, *grace))
	rr = httptest.NewRecorder()
	MineHandler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var apps []Application
	if err := json.Unmarshal(rr.Body.Bytes(), &apps); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(apps) != 0 {
		t.Errorf("expected no applications for another account, got %d", len(apps))
	}
}
