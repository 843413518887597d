package studio

import (
	"context"
	"sync"

	"imagestudio/internal/domain"
)

type editCall struct {
	Images []domain.EncodedImage
	Prompt string
}

type textCall struct {
	Prompt string
	Opts   TextToImageOptions
}

type translateCall struct {
	Text        string
	Instruction string
}

// fakeRemote records every call. When gate is set, calls block until it is
// closed; started receives one value per call entering the fake.
type fakeRemote struct {
	mu sync.Mutex

	editCalls      []editCall
	textCalls      []textCall
	translateCalls []translateCall

	editResp      *EditResponse
	textResp      *TextToImageResponse
	translateResp string
	err           error
	panicWith     any

	gate    chan struct{}
	started chan struct{}
}

func (f *fakeRemote) wait() {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	if f.panicWith != nil {
		panic(f.panicWith)
	}
}

func (f *fakeRemote) GenerateEdit(_ context.Context, images []domain.EncodedImage, prompt string) (*EditResponse, error) {
	f.mu.Lock()
	f.editCalls = append(f.editCalls, editCall{Images: images, Prompt: prompt})
	f.mu.Unlock()
	f.wait()
	return f.editResp, f.err
}

func (f *fakeRemote) GenerateTextToImage(_ context.Context, prompt string, opts TextToImageOptions) (*TextToImageResponse, error) {
	f.mu.Lock()
	f.textCalls = append(f.textCalls, textCall{Prompt: prompt, Opts: opts})
	f.mu.Unlock()
	f.wait()
	return f.textResp, f.err
}

func (f *fakeRemote) Translate(_ context.Context, text, instruction string) (string, error) {
	f.mu.Lock()
	f.translateCalls = append(f.translateCalls, translateCall{Text: text, Instruction: instruction})
	f.mu.Unlock()
	f.wait()
	return f.translateResp, f.err
}

func (f *fakeRemote) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.editCalls) + len(f.textCalls) + len(f.translateCalls)
}
