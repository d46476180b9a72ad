package operator

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jagannath-p-s/malabareco-sub001/internal/storage"
)

type mockWriteOpener struct {
	mock.Mock
}

func (m *mockWriteOpener) Write(ctx context.Context) (*storage.Writer, error) {
	args := m.Called(ctx)
	writer, _ := args.Get(0).(*storage.Writer)
	return writer, args.Error(1)
}

type recordingAction struct {
	performed bool
}

func (a *recordingAction) Perform(ctx context.Context, writer *storage.Writer) error {
	a.performed = true
	return nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestProcess_WriteErrorIsReturned(t *testing.T) {
	opener := new(mockWriteOpener)
	opener.On("Write", mock.Anything).Return(nil, errors.New("too many connections"))

	d := NewOperatorDelegator(opener, 2, quietLogger())
	d.Start()
	defer d.Stop()

	action := &recordingAction{}
	err := d.Process(context.Background(), action)

	assert.EqualError(t, err, "too many connections")
	assert.False(t, action.performed)
	opener.AssertExpectations(t)
}

func TestProcess_CancelledContextSkipsAction(t *testing.T) {
	opener := new(mockWriteOpener)

	d := NewOperatorDelegator(opener, 1, quietLogger())
	d.Start()
	defer d.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	action := &recordingAction{}
	err := d.Process(ctx, action)

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, action.performed)
	opener.AssertNotCalled(t, "Write", mock.Anything)
}

func TestProcess_AfterStop(t *testing.T) {
	d := NewOperatorDelegator(new(mockWriteOpener), 1, quietLogger())
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), &recordingAction{})

	assert.ErrorIs(t, err, ErrStopped)
}

func TestNewOperatorDelegator_AtLeastOneWorker(t *testing.T) {
	d := NewOperatorDelegator(new(mockWriteOpener), 0, quietLogger())
	assert.Equal(t, 1, d.numWorkers)
}
