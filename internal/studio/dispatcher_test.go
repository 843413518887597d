package studio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imagestudio/internal/domain"
)

func newTestDispatcher(t *testing.T, remote RemoteService) *Dispatcher {
	t.Helper()
	d, err := NewDispatcher(remote, DispatcherOptions{})
	require.NoError(t, err)
	return d
}

func TestNewDispatcherRequiresRemote(t *testing.T) {
	_, err := NewDispatcher(nil, DispatcherOptions{})
	assert.Error(t, err)
}

func TestDispatchSelectsVariantBySlots(t *testing.T) {
	tests := []struct {
		name       string
		slots      map[int]domain.EncodedImage
		wantEdit   bool
		wantImages []domain.EncodedImage
	}{
		{name: "no slots", wantEdit: false},
		{name: "slot 0", slots: map[int]domain.EncodedImage{0: imgA}, wantEdit: true, wantImages: []domain.EncodedImage{imgA}},
		{name: "slot 1", slots: map[int]domain.EncodedImage{1: imgB}, wantEdit: true, wantImages: []domain.EncodedImage{imgB}},
		{name: "both", slots: map[int]domain.EncodedImage{0: imgA, 1: imgB}, wantEdit: true, wantImages: []domain.EncodedImage{imgA, imgB}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := &fakeRemote{}
			ws := NewWorkspace()
			ws.SetPrompt("a red fox")
			for i, img := range tt.slots {
				require.NoError(t, ws.Images().SetSlot(i, img))
			}

			newTestDispatcher(t, remote).Dispatch(context.Background(), ws)

			require.Equal(t, 1, remote.calls())
			if tt.wantEdit {
				require.Len(t, remote.editCalls, 1)
				assert.Equal(t, tt.wantImages, remote.editCalls[0].Images)
				assert.Equal(t, "a red fox", remote.editCalls[0].Prompt)
				return
			}
			require.Len(t, remote.textCalls, 1)
			assert.Equal(t, "a red fox", remote.textCalls[0].Prompt)
			assert.Equal(t, TextToImageOptions{Count: 1, OutputMIMEType: "image/jpeg"}, remote.textCalls[0].Opts)
		})
	}
}

func TestDispatchUsesConfiguredOutputMIME(t *testing.T) {
	remote := &fakeRemote{textResp: &TextToImageResponse{Images: []domain.EncodedImage{{Data: "AAAA"}}}}
	d, err := NewDispatcher(remote, DispatcherOptions{OutputMIMEType: "image/png"})
	require.NoError(t, err)

	res := d.Execute(context.Background(), TextToImageRequest{Prompt: "p"})
	assert.Equal(t, "image/png", remote.textCalls[0].Opts.OutputMIMEType)
	assert.Equal(t, ImageResult{MIMEType: "image/png", Data: "AAAA"}, res)
}

func TestExecuteEditNormalization(t *testing.T) {
	tests := []struct {
		name string
		resp *EditResponse
		want Result
	}{
		{
			name: "first inline image wins",
			resp: &EditResponse{Parts: []ContentPart{
				{Text: "here you go"},
				{InlineImage: &domain.EncodedImage{MIMEType: "image/png", Data: "AAAA"}},
				{InlineImage: &domain.EncodedImage{MIMEType: "image/jpeg", Data: "BBBB"}},
			}},
			want: ImageResult{MIMEType: "image/png", Data: "AAAA"},
		},
		{
			name: "text only",
			resp: &EditResponse{Parts: []ContentPart{{Text: "I cannot do that"}}},
			want: NoImageProduced{},
		},
		{
			name: "empty inline payload skipped",
			resp: &EditResponse{Parts: []ContentPart{{InlineImage: &domain.EncodedImage{}}}},
			want: NoImageProduced{},
		},
		{name: "no parts", resp: &EditResponse{}, want: NoImageProduced{}},
		{name: "nil response", resp: nil, want: NoImageProduced{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := &fakeRemote{editResp: tt.resp}
			res := newTestDispatcher(t, remote).Execute(context.Background(), EditRequest{Images: []domain.EncodedImage{imgA}, Prompt: "p"})
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestExecuteTextToImageNormalization(t *testing.T) {
	remote := &fakeRemote{textResp: &TextToImageResponse{Images: []domain.EncodedImage{
		{MIMEType: "image/png", Data: "AAAA"},
		{MIMEType: "image/png", Data: "BBBB"},
	}}}
	res := newTestDispatcher(t, remote).Execute(context.Background(), TextToImageRequest{Prompt: "p"})
	assert.Equal(t, ImageResult{MIMEType: "image/png", Data: "AAAA"}, res)
	assert.Equal(t, "data:image/png;base64,AAAA", Render(res).ImageSrc)

	for _, resp := range []*TextToImageResponse{nil, {}} {
		remote := &fakeRemote{textResp: resp}
		res := newTestDispatcher(t, remote).Execute(context.Background(), TextToImageRequest{Prompt: "p"})
		assert.Equal(t, NoImageProduced{}, res)
	}
}

func TestDispatchFailureLeavesStateUntouched(t *testing.T) {
	remote := &fakeRemote{err: errors.New("quota exceeded")}
	ws := NewWorkspace()
	ws.SetPrompt("p")
	require.NoError(t, ws.Images().SetSlot(1, imgB))

	res := newTestDispatcher(t, remote).Dispatch(context.Background(), ws)

	assert.Equal(t, Failure{Message: "quota exceeded"}, res)
	assert.Equal(t, "error: quota exceeded", Render(res).Status)
	assert.Equal(t, "p", ws.Prompt())
	got, ok := ws.Images().Slot(1)
	require.True(t, ok)
	assert.Equal(t, imgB, got)
	assert.Equal(t, 1, ws.Images().Count())
}

func TestExecuteRecoversRemotePanic(t *testing.T) {
	remote := &fakeRemote{panicWith: "boom"}
	res := newTestDispatcher(t, remote).Execute(context.Background(), TextToImageRequest{Prompt: "p"})
	assert.Equal(t, Failure{Message: "boom"}, res)
}

func TestExecuteDoesNotRetry(t *testing.T) {
	remote := &fakeRemote{err: errors.New("transient")}
	newTestDispatcher(t, remote).Execute(context.Background(), EditRequest{Images: []domain.EncodedImage{imgA}, Prompt: "p"})
	assert.Equal(t, 1, remote.calls())
}
