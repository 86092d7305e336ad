package fakes

import (
	"sync"

	"github.com/paketo-buildpacks/packit/v2/postal"
)

type DependencyManager struct {
	DeliverCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			Dependency   postal.Dependency
			BuildpackDir string
			Destination  string
			PlatformDir  string
		}
		Returns struct {
			Error error
		}
		Stub func(postal.Dependency, string, string, string) error
	}
	ResolveCall struct {
		mutex     sync.Mutex
		CallCount int
		Receives  struct {
			Path    string
			Id      string
			Version string
			Stack   string
		}
		Returns struct {
			Dependency postal.Dependency
			Error      error
		}
		Stub func(string, string, string, string) (postal.Dependency, error)
	}
}

func (f *DependencyManager) Deliver(param1 postal.Dependency, param2 string, param3 string, param4 string) error {
	f.DeliverCall.mutex.Lock()
	defer f.DeliverCall.mutex.Unlock()
	f.DeliverCall.CallCount++
	f.DeliverCall.Receives.Dependency = param1
	f.DeliverCall.Receives.BuildpackDir = param2
	f.DeliverCall.Receives.Destination = param3
	f.DeliverCall.Receives.PlatformDir = param4
	if f.DeliverCall.Stub != nil {
		return f.DeliverCall.Stub(param1, param2, param3, param4)
	}
	return f.DeliverCall.Returns.Error
}

func (f *DependencyManager) Resolve(param1 string, param2 string, param3 string, param4 string) (postal.Dependency, error) {
	f.ResolveCall.mutex.Lock()
	defer f.ResolveCall.mutex.Unlock()
	f.ResolveCall.CallCount++
	f.ResolveCall.Receives.Path = param1
	f.ResolveCall.Receives.Id = param2
	f.ResolveCall.Receives.Version = param3
	f.ResolveCall.Receives.Stack = param4
	if f.ResolveCall.Stub != nil {
		return f.ResolveCall.Stub(param1, param2, param3, param4)
	}
	return f.ResolveCall.Returns.Dependency, f.ResolveCall.Returns.Error
}
