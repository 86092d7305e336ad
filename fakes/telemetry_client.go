package fakes

import "sync"

type TelemetryClient struct {
	PostCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			Raw []byte
		}
		Returns struct {
			Error error
		}
		Stub func([]byte) error
	}
}

func (f *TelemetryClient) Post(param1 []byte) error {
	f.PostCall.mutex.Lock()
	defer f.PostCall.mutex.Unlock()
	f.PostCall.CallCount++
	f.PostCall.Receives.Raw = param1
	if f.PostCall.Stub != nil {
		return f.PostCall.Stub(param1)
	}
	return f.PostCall.Returns.Error
}
