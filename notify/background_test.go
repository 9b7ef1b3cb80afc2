package notify

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"peerchat/mocks"
)

func TestReceiver_Receive(t *testing.T) {
	t.Run("should replace payloads sharing a tag instead of stacking", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		shower := mocks.NewMockINotifier(ctrl)
		windows := mocks.NewMockIWindowManager(ctrl)
		shower.EXPECT().Show(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		r := NewReceiver(slog.Default(), shower, windows)
		r.Receive(PushPayload{Title: "carol", Message: "first"})
		r.Receive(PushPayload{Title: "carol", Message: "second"})

		payload, ok := r.Active(DefaultTag)
		req.True(ok)
		req.Equal("second", payload.Message)
	})

	t.Run("should keep payloads with distinct tags side by side", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		shower := mocks.NewMockINotifier(ctrl)
		windows := mocks.NewMockIWindowManager(ctrl)
		shower.EXPECT().Show(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		r := NewReceiver(slog.Default(), shower, windows)
		r.Receive(PushPayload{Title: "carol", Message: "hi", Tag: "carol"})
		r.Receive(PushPayload{Title: "bob", Message: "yo", Tag: "bob"})

		_, ok := r.Active("carol")
		req.True(ok)
		_, ok = r.Active("bob")
		req.True(ok)
	})

	t.Run("should drop an empty payload without showing anything", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		shower := mocks.NewMockINotifier(ctrl)
		windows := mocks.NewMockIWindowManager(ctrl)
		shower.EXPECT().Show(gomock.Any(), gomock.Any()).Times(0)

		r := NewReceiver(slog.Default(), shower, windows)
		r.Receive(PushPayload{})

		_, ok := r.Active(DefaultTag)
		req.False(ok)
	})
}

func TestReceiver_Click(t *testing.T) {
	t.Run("should focus an existing window and dismiss the notification", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		shower := mocks.NewMockINotifier(ctrl)
		windows := mocks.NewMockIWindowManager(ctrl)
		shower.EXPECT().Show(gomock.Any(), gomock.Any()).Return(nil)
		windows.EXPECT().FocusExisting().Return(true)
		windows.EXPECT().OpenNew().Times(0)

		r := NewReceiver(slog.Default(), shower, windows)
		r.Receive(PushPayload{Title: "carol", Message: "yo"})
		r.Click("")

		_, ok := r.Active(DefaultTag)
		req.False(ok)
	})

	t.Run("should open a new window when none can be focused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		shower := mocks.NewMockINotifier(ctrl)
		windows := mocks.NewMockIWindowManager(ctrl)
		windows.EXPECT().FocusExisting().Return(false)
		windows.EXPECT().OpenNew().Return(nil)

		r := NewReceiver(slog.Default(), shower, windows)
		r.Click("whatever")
	})
}
