package fakes

import (
	"sync"

	nodejsgems "github.com/paketo-community/nodejs-gems"
)

type PackageParser struct {
	ParseCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			Path string
		}
		Returns struct {
			PackageJSON nodejsgems.PackageJSON
			Error       error
		}
		Stub func(string) (nodejsgems.PackageJSON, error)
	}
}

func (f *PackageParser) Parse(param1 string) (nodejsgems.PackageJSON, error) {
	f.ParseCall.mutex.Lock()
	defer f.ParseCall.mutex.Unlock()
	f.ParseCall.CallCount++
	f.ParseCall.Receives.Path = param1
	if f.ParseCall.Stub != nil {
		return f.ParseCall.Stub(param1)
	}
	return f.ParseCall.Returns.PackageJSON, f.ParseCall.Returns.Error
}
