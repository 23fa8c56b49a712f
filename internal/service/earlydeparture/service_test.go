package earlydeparture

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/earlydeparture"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRequestRepo is an in-memory RequestRepository. UpdateStatus re-checks
// the pending state under the mutex, like the SQL WHERE guard.
type fakeRequestRepo struct {
	mu       sync.Mutex
	requests map[string]earlydeparture.Request
	nextID   int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]earlydeparture.Request)}
}

func (f *fakeRequestRepo) Create(ctx context.Context, request earlydeparture.Request) (earlydeparture.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	request.RequestID = time.Now().Format("20060102") + "-" + string(rune('a'+f.nextID))
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	f.requests[request.RequestID] = request
	return request, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (earlydeparture.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	request, ok := f.requests[id]
	if !ok {
		return earlydeparture.Request{}, earlydeparture.ErrRequestNotFound
	}
	return request, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id string, status earlydeparture.RequestStatus, approvedBy string) (earlydeparture.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	request, ok := f.requests[id]
	if !ok || request.Status != earlydeparture.RequestStatusPending {
		return earlydeparture.Request{}, earlydeparture.ErrRequestAlreadyResolved
	}

	request.Status = status
	request.ApprovedBy = &approvedBy
	request.UpdatedAt = time.Now()
	f.requests[id] = request
	return request, nil
}

func (f *fakeRequestRepo) ListByUser(ctx context.Context, userID string) ([]earlydeparture.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var requests []earlydeparture.Request
	for _, request := range f.requests {
		if request.UserID == userID {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (f *fakeRequestRepo) ListAll(ctx context.Context) ([]earlydeparture.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var requests []earlydeparture.Request
	for _, request := range f.requests {
		requests = append(requests, request)
	}
	return requests, nil
}

func (f *fakeRequestRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.requests[id]; !ok {
		return earlydeparture.ErrRequestNotFound
	}
	delete(f.requests, id)
	return nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{ID: id}, nil
}

func (fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

var testTokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

func ctxWithClaims(t *testing.T, userID string) context.Context {
	t.Helper()
	token, _, err := testTokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func validSubmitRequest() earlydeparture.SubmitRequestRequest {
	return earlydeparture.SubmitRequestRequest{
		Description: "Medical appointment",
		RequestDate: "2026-03-02",
		RequestTime: "15:30",
	}
}

func TestSubmit_CreatesPendingRequest(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(nil, repo, fakeUserRepo{})

	resp, err := svc.Submit(ctxWithClaims(t, "user-1"), validSubmitRequest())
	require.NoError(t, err)

	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, string(earlydeparture.RequestStatusPending), resp.Status)
	assert.Equal(t, "2026-03-02", resp.RequestDate)
	assert.Equal(t, "15:30", resp.RequestTime)
	assert.Nil(t, resp.ApprovedBy)
}

func TestSubmit_Validation(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(nil, repo, fakeUserRepo{})
	ctx := ctxWithClaims(t, "user-1")

	missing := earlydeparture.SubmitRequestRequest{}
	_, err := svc.Submit(ctx, missing)
	assert.Error(t, err)

	badDate := validSubmitRequest()
	badDate.RequestDate = "02/03/2026"
	_, err = svc.Submit(ctx, badDate)
	assert.Error(t, err)

	badTime := validSubmitRequest()
	badTime.RequestTime = "half past three"
	_, err = svc.Submit(ctx, badTime)
	assert.Error(t, err)

	longDescription := validSubmitRequest()
	for len(longDescription.Description) <= 255 {
		longDescription.Description += " and more context"
	}
	_, err = svc.Submit(ctx, longDescription)
	assert.Error(t, err)
}

func TestApprove_PendingRequest(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(nil, repo, fakeUserRepo{})

	created, err := svc.Submit(ctxWithClaims(t, "user-1"), validSubmitRequest())
	require.NoError(t, err)

	resp, err := svc.Approve(ctxWithClaims(t, "admin-1"), created.RequestID)
	require.NoError(t, err)

	assert.Equal(t, string(earlydeparture.RequestStatusApproved), resp.Status)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, "admin-1", *resp.ApprovedBy)
}

func TestApprove_AlreadyResolved(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(nil, repo, fakeUserRepo{})

	created, err := svc.Submit(ctxWithClaims(t, "user-1"), validSubmitRequest())
	require.NoError(t, err)

	adminCtx := ctxWithClaims(t, "admin-1")
	_, err = svc.Reject(adminCtx, created.RequestID)
	require.NoError(t, err)

	// Terminal states cannot be overwritten, not even by another admin.
	_, err = svc.Approve(ctxWithClaims(t, "admin-2"), created.RequestID)
	assert.ErrorIs(t, err, earlydeparture.ErrRequestAlreadyResolved)

	_, err = svc.Reject(adminCtx, created.RequestID)
	assert.ErrorIs(t, err, earlydeparture.ErrRequestAlreadyResolved)
}

func TestApprove_NotFound(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(nil, repo, fakeUserRepo{})

	_, err := svc.Approve(ctxWithClaims(t, "admin-1"), "missing")
	assert.ErrorIs(t, err, earlydeparture.ErrRequestNotFound)
}

func TestListMine_OnlyOwnRequests(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(nil, repo, fakeUserRepo{})

	_, err := svc.Submit(ctxWithClaims(t, "user-1"), validSubmitRequest())
	require.NoError(t, err)
	_, err = svc.Submit(ctxWithClaims(t, "user-2"), validSubmitRequest())
	require.NoError(t, err)

	mine, err := svc.ListMine(ctxWithClaims(t, "user-1"))
	require.NoError(t, err)
	require.Equal(t, 1, mine.TotalCount)
	assert.Equal(t, "user-1", mine.Requests[0].UserID)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, all.TotalCount)
}

func TestDelete_Request(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(nil, repo, fakeUserRepo{})

	created, err := svc.Submit(ctxWithClaims(t, "user-1"), validSubmitRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.RequestID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.RequestID), earlydeparture.ErrRequestNotFound)
}
