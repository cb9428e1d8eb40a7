package providers

import "context"

// Fake is a canned Consultant for tests. It records the last request and
// returns a fixed response or error.
type Fake struct {
	Response    Response
	Err         error
	LastRequest Request
	Calls       int
}

func (f *Fake) Consult(ctx context.Context, req Request) (Response, error) {
	_ = ctx
	f.LastRequest = req
	f.Calls++
	if f.Err != nil {
		return Response{}, f.Err
	}
	return f.Response, nil
}

func (f *Fake) Name() string { return "fake" }
