package fakes

import (
	"sync"

	nodejsgems "github.com/paketo-community/nodejs-gems"
)

type ProcfileWriter struct {
	WriteCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			WorkingDir string
			Pkg        nodejsgems.PackageJSON
		}
		Returns struct {
			Process string
			Err     error
		}
		Stub func(string, nodejsgems.PackageJSON) (string, error)
	}
}

func (f *ProcfileWriter) Write(param1 string, param2 nodejsgems.PackageJSON) (string, error) {
	f.WriteCall.mutex.Lock()
	defer f.WriteCall.mutex.Unlock()
	f.WriteCall.CallCount++
	f.WriteCall.Receives.WorkingDir = param1
	f.WriteCall.Receives.Pkg = param2
	if f.WriteCall.Stub != nil {
		return f.WriteCall.Stub(param1, param2)
	}
	return f.WriteCall.Returns.Process, f.WriteCall.Returns.Err
}
