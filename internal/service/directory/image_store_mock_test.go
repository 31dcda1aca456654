package directory

import (
	"context"
	"io"
	"sync"
)

var _ imageStore = &imageStoreMock{}

type imageStoreMock struct {
	PutFunc func(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)

	calls struct {
		Put []struct {
			Ctx         context.Context
			Key         string
			Body        io.Reader
			Size        int64
			ContentType string
		}
	}
	lockPut sync.RWMutex
}

func (mock *imageStoreMock) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	if mock.PutFunc == nil {
		panic("imageStoreMock.PutFunc: method is nil but imageStore.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		Body        io.Reader
		Size        int64
		ContentType string
	}{Ctx: ctx, Key: key, Body: body, Size: size, ContentType: contentType}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, body, size, contentType)
}

func (mock *imageStoreMock) PutCalls() []struct {
	Ctx         context.Context
	Key         string
	Body        io.Reader
	Size        int64
	ContentType string
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}
