package fakes

import "sync"

type ProfileWriter struct {
	WriteCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			WorkingDir string
		}
		Returns struct {
			Error error
		}
		Stub func(string) error
	}
}

func (f *ProfileWriter) Write(param1 string) error {
	f.WriteCall.mutex.Lock()
	defer f.WriteCall.mutex.Unlock()
	f.WriteCall.CallCount++
	f.WriteCall.Receives.WorkingDir = param1
	if f.WriteCall.Stub != nil {
		return f.WriteCall.Stub(param1)
	}
	return f.WriteCall.Returns.Error
}
