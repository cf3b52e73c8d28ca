package enrichment

import (
	"context"
	"sync"

	"github.com/plantify/plantify-backend/internal/domain"
)

// Hand-kept moq-style mocks for the service dependencies.

var _ captionClient = &captionClientMock{}

type captionClientMock struct {
	DescribeFunc func(ctx context.Context, imageURL string) (string, error)

	calls struct {
		Describe []struct {
			Ctx      context.Context
			ImageURL string
		}
	}
	lockDescribe sync.RWMutex
}

func (mock *captionClientMock) Describe(ctx context.Context, imageURL string) (string, error) {
	if mock.DescribeFunc == nil {
		panic("captionClientMock.DescribeFunc: method is nil but captionClient.Describe was just called")
	}
	mock.lockDescribe.Lock()
	mock.calls.Describe = append(mock.calls.Describe, struct {
		Ctx      context.Context
		ImageURL string
	}{Ctx: ctx, ImageURL: imageURL})
	mock.lockDescribe.Unlock()
	return mock.DescribeFunc(ctx, imageURL)
}

func (mock *captionClientMock) DescribeCalls() []struct {
	Ctx      context.Context
	ImageURL string
} {
	mock.lockDescribe.RLock()
	calls := mock.calls.Describe
	mock.lockDescribe.RUnlock()
	return calls
}

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	SetDescriptionIfEmptyFunc func(ctx context.Context, postID, description string) (bool, error)

	calls struct {
		SetDescriptionIfEmpty []struct {
			Ctx         context.Context
			PostID      string
			Description string
		}
	}
	lockSetDescriptionIfEmpty sync.RWMutex
}

func (mock *postRepoMock) SetDescriptionIfEmpty(ctx context.Context, postID, description string) (bool, error) {
	if mock.SetDescriptionIfEmptyFunc == nil {
		panic("postRepoMock.SetDescriptionIfEmptyFunc: method is nil but postRepo.SetDescriptionIfEmpty was just called")
	}
	mock.lockSetDescriptionIfEmpty.Lock()
	mock.calls.SetDescriptionIfEmpty = append(mock.calls.SetDescriptionIfEmpty, struct {
		Ctx         context.Context
		PostID      string
		Description string
	}{Ctx: ctx, PostID: postID, Description: description})
	mock.lockSetDescriptionIfEmpty.Unlock()
	return mock.SetDescriptionIfEmptyFunc(ctx, postID, description)
}

func (mock *postRepoMock) SetDescriptionIfEmptyCalls() []struct {
	Ctx         context.Context
	PostID      string
	Description string
} {
	mock.lockSetDescriptionIfEmpty.RLock()
	calls := mock.calls.SetDescriptionIfEmpty
	mock.lockSetDescriptionIfEmpty.RUnlock()
	return calls
}

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetUsernameFunc       func(ctx context.Context, userID string) (string, error)
	ListUserIDsExceptFunc func(ctx context.Context, userID string) ([]string, error)

	calls struct {
		GetUsername []struct {
			Ctx    context.Context
			UserID string
		}
		ListUserIDsExcept []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockGetUsername       sync.RWMutex
	lockListUserIDsExcept sync.RWMutex
}

func (mock *profileRepoMock) GetUsername(ctx context.Context, userID string) (string, error) {
	if mock.GetUsernameFunc == nil {
		panic("profileRepoMock.GetUsernameFunc: method is nil but profileRepo.GetUsername was just called")
	}
	mock.lockGetUsername.Lock()
	mock.calls.GetUsername = append(mock.calls.GetUsername, struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID})
	mock.lockGetUsername.Unlock()
	return mock.GetUsernameFunc(ctx, userID)
}

func (mock *profileRepoMock) GetUsernameCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockGetUsername.RLock()
	calls := mock.calls.GetUsername
	mock.lockGetUsername.RUnlock()
	return calls
}

func (mock *profileRepoMock) ListUserIDsExcept(ctx context.Context, userID string) ([]string, error) {
	if mock.ListUserIDsExceptFunc == nil {
		panic("profileRepoMock.ListUserIDsExceptFunc: method is nil but profileRepo.ListUserIDsExcept was just called")
	}
	mock.lockListUserIDsExcept.Lock()
	mock.calls.ListUserIDsExcept = append(mock.calls.ListUserIDsExcept, struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID})
	mock.lockListUserIDsExcept.Unlock()
	return mock.ListUserIDsExceptFunc(ctx, userID)
}

func (mock *profileRepoMock) ListUserIDsExceptCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockListUserIDsExcept.RLock()
	calls := mock.calls.ListUserIDsExcept
	mock.lockListUserIDsExcept.RUnlock()
	return calls
}

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	BulkInsertFunc func(ctx context.Context, notifications []domain.Notification) (int, error)

	calls struct {
		BulkInsert []struct {
			Ctx           context.Context
			Notifications []domain.Notification
		}
	}
	lockBulkInsert sync.RWMutex
}

func (mock *notificationRepoMock) BulkInsert(ctx context.Context, notifications []domain.Notification) (int, error) {
	if mock.BulkInsertFunc == nil {
		panic("notificationRepoMock.BulkInsertFunc: method is nil but notificationRepo.BulkInsert was just called")
	}
	mock.lockBulkInsert.Lock()
	mock.calls.BulkInsert = append(mock.calls.BulkInsert, struct {
		Ctx           context.Context
		Notifications []domain.Notification
	}{Ctx: ctx, Notifications: notifications})
	mock.lockBulkInsert.Unlock()
	return mock.BulkInsertFunc(ctx, notifications)
}

func (mock *notificationRepoMock) BulkInsertCalls() []struct {
	Ctx           context.Context
	Notifications []domain.Notification
} {
	mock.lockBulkInsert.RLock()
	calls := mock.calls.BulkInsert
	mock.lockBulkInsert.RUnlock()
	return calls
}
